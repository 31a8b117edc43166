package kafka

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/sounding-analysis/internal/config"
	"github.com/couchcryptid/sounding-analysis/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
)

// Reader consumes raw sounding messages from the source topic.
// It implements pipeline.Extractor.
type Reader struct {
	reader *kafkago.Reader
	logger *slog.Logger
}

// NewReader creates a Kafka consumer for the configured source topic.
// Offsets are committed explicitly via the message's Commit callback so a
// sounding is only acknowledged after its analysis has been loaded (or
// deliberately skipped).
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     cfg.KafkaBrokers,
		Topic:       cfg.KafkaSourceTopic,
		GroupID:     cfg.KafkaGroupID,
		StartOffset: kafkago.FirstOffset,
	})
	return &Reader{reader: r, logger: logger}
}

// Extract blocks until the next message is available or the context is
// cancelled.
func (r *Reader) Extract(ctx context.Context) (pipeline.RawMessage, error) {
	msg, err := r.reader.FetchMessage(ctx)
	if err != nil {
		return pipeline.RawMessage{}, err
	}

	raw := mapMessageToRaw(msg)
	raw.Commit = func(ctx context.Context) error {
		return r.reader.CommitMessages(ctx, msg)
	}
	return raw, nil
}

func (r *Reader) Close() error {
	return r.reader.Close()
}

// mapMessageToRaw converts a Kafka message into the pipeline's envelope.
func mapMessageToRaw(msg kafkago.Message) pipeline.RawMessage {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return pipeline.RawMessage{
		Key:       msg.Key,
		Value:     msg.Value,
		Headers:   headers,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
	}
}
