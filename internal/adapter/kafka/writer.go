package kafka

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/sounding-analysis/internal/config"
	"github.com/couchcryptid/sounding-analysis/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces analysis records to the sink topic.
// It implements pipeline.Loader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Load publishes one analysis record to the sink topic.
func (w *Writer) Load(ctx context.Context, out pipeline.OutputMessage) error {
	return w.writer.WriteMessages(ctx, mapOutputToMessage(out))
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// mapOutputToMessage converts the pipeline's output envelope into a Kafka
// message, preserving header order for deterministic tests.
func mapOutputToMessage(out pipeline.OutputMessage) kafkago.Message {
	msg := kafkago.Message{
		Key:   out.Key,
		Value: out.Value,
	}
	for _, k := range []string{"generated_at", "levels"} {
		if v, ok := out.Headers[k]; ok {
			msg.Headers = append(msg.Headers, kafkago.Header{Key: k, Value: []byte(v)})
		}
	}
	return msg
}
