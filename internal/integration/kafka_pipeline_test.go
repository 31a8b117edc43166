//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/couchcryptid/sounding-analysis/internal/adapter/kafka"
	"github.com/couchcryptid/sounding-analysis/internal/config"
	"github.com/couchcryptid/sounding-analysis/internal/observability"
	"github.com/couchcryptid/sounding-analysis/internal/pipeline"
	"github.com/couchcryptid/sounding-analysis/internal/sounding"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSourceTopic = "test-raw-soundings"
	testSinkTopic   = "test-sounding-analyses"
)

// testProfile is an idealized severe-weather sounding used across the
// integration tests.
var testProfile = sounding.Profile{
	{Pressure: 1000, Height: 100, Temperature: 25, Dewpoint: 21, WindDirection: 160, WindSpeed: 15},
	{Pressure: 950, Height: 550, Temperature: 22, Dewpoint: 19, WindDirection: 180, WindSpeed: 25},
	{Pressure: 900, Height: 990, Temperature: 19, Dewpoint: 17, WindDirection: 190, WindSpeed: 30},
	{Pressure: 850, Height: 1450, Temperature: 17, Dewpoint: 14, WindDirection: 200, WindSpeed: 35},
	{Pressure: 800, Height: 1950, Temperature: 14, Dewpoint: 11, WindDirection: 210, WindSpeed: 40},
	{Pressure: 700, Height: 3050, Temperature: 8, Dewpoint: 2, WindDirection: 220, WindSpeed: 45},
	{Pressure: 600, Height: 4300, Temperature: -1, Dewpoint: -8, WindDirection: 230, WindSpeed: 50},
	{Pressure: 500, Height: 5750, Temperature: -12, Dewpoint: -20, WindDirection: 240, WindSpeed: 55},
	{Pressure: 400, Height: 7400, Temperature: -25, Dewpoint: -35, WindDirection: 250, WindSpeed: 60},
	{Pressure: 300, Height: 9400, Temperature: -42, Dewpoint: -55, WindDirection: 250, WindSpeed: 70},
}

// analyzedMessage holds a deserialized analysis read from the sink topic.
type analyzedMessage struct {
	Result  sounding.AnalysisResult
	Key     string
	Headers map[string]string
}

// readAnalyzed reads a single message from the sink consumer and deserializes it.
func readAnalyzed(ctx context.Context, t *testing.T, consumer *kafkago.Reader) analyzedMessage {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from sink topic")

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	var result sounding.AnalysisResult
	require.NoError(t, json.Unmarshal(msg.Value, &result), "unmarshal sink message")

	return analyzedMessage{
		Result:  result,
		Key:     string(msg.Key),
		Headers: headers,
	}
}

func sinkConsumer(t *testing.T, broker string) *kafkago.Reader {
	t.Helper()
	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testSinkTopic,
		GroupID:     fmt.Sprintf("test-sink-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })
	return consumer
}

// TestKafkaReaderWriter verifies the adapter layer: kafka.Reader (Extractor)
// and kafka.Writer (Loader) correctly round-trip a sounding through Kafka.
func TestKafkaReaderWriter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)

	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaBrokers:     []string{broker},
		KafkaSourceTopic: testSourceTopic,
		KafkaSinkTopic:   testSinkTopic,
		KafkaGroupID:     fmt.Sprintf("test-reader-%d", time.Now().UnixNano()),
	}

	payload, err := json.Marshal(testProfile)
	require.NoError(t, err)

	producer := &kafkago.Writer{
		Addr:  kafkago.TCP(broker),
		Topic: testSourceTopic,
	}
	t.Cleanup(func() { _ = producer.Close() })

	require.NoError(t, producer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte("OUN-2024042618"),
		Value: payload,
	}))

	// Extract via kafka.Reader. The first fetch may wait on a consumer
	// group rebalance; Extract blocks until the message arrives.
	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })

	raw, err := reader.Extract(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("OUN-2024042618"), raw.Key)
	assert.Equal(t, payload, raw.Value)
	assert.Equal(t, testSourceTopic, raw.Topic)
	require.NotNil(t, raw.Commit, "commit callback should be set")
	require.NoError(t, raw.Commit(ctx))

	// Analyze the raw sounding.
	transformer := pipeline.NewTransformer(discardLogger(), observability.NewMetricsForTesting())
	out, err := transformer.Transform(ctx, raw)
	require.NoError(t, err)

	// Load via kafka.Writer.
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	require.NoError(t, writer.Load(ctx, out))

	// Read from the sink topic and verify headers + value.
	am := readAnalyzed(ctx, t, sinkConsumer(t, broker))
	assert.Equal(t, "OUN-2024042618", am.Key)
	assert.Equal(t, "10", am.Headers["levels"])
	_, err = time.Parse(time.RFC3339, am.Headers["generated_at"])
	assert.NoError(t, err, "generated_at should be valid RFC3339")

	assert.Greater(t, am.Result.SurfaceBased.CAPE, 0.0)
	assert.Len(t, am.Result.ParcelPath, len(testProfile))
}

// TestPipelineEndToEnd wires the full pipeline (Reader, Transformer, Writer)
// with real Kafka and verifies the analysis lands on the sink topic.
func TestPipelineEndToEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)

	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaBrokers:     []string{broker},
		KafkaSourceTopic: testSourceTopic,
		KafkaSinkTopic:   testSinkTopic,
		KafkaGroupID:     fmt.Sprintf("test-pipeline-%d", time.Now().UnixNano()),
	}

	payload, err := json.Marshal(testProfile)
	require.NoError(t, err)

	producer := &kafkago.Writer{
		Addr:  kafkago.TCP(broker),
		Topic: testSourceTopic,
	}
	t.Cleanup(func() { _ = producer.Close() })

	require.NoError(t, producer.WriteMessages(ctx,
		kafkago.Message{Key: []byte("OUN-2024042618"), Value: payload},
		kafkago.Message{Key: []byte("FWD-2024042618"), Value: payload},
	))

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })

	// The duplicate payload exercises the cache decorator end to end.
	metrics := observability.NewMetricsForTesting()
	transformer := pipeline.NewCachedTransformer(
		pipeline.NewTransformer(discardLogger(), metrics), 16, metrics)

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(reader, transformer, writer, discardLogger(), metrics)

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := sinkConsumer(t, broker)
	first := readAnalyzed(ctx, t, consumer)
	second := readAnalyzed(ctx, t, consumer)

	pipelineCancel()
	require.NoError(t, <-errCh)

	// Message keys pass through; identical payloads yield identical analyses.
	keys := []string{first.Key, second.Key}
	assert.ElementsMatch(t, []string{"OUN-2024042618", "FWD-2024042618"}, keys)
	assert.Equal(t, first.Result.SurfaceBased.CAPE, second.Result.SurfaceBased.CAPE)
	assert.Equal(t, first.Result.SRH01, second.Result.SRH01)

	for _, am := range []analyzedMessage{first, second} {
		assert.Greater(t, am.Result.SurfaceBased.CAPE, 0.0)
		assert.NotEmpty(t, am.Headers["generated_at"])
		assert.Equal(t, "10", am.Headers["levels"])
	}

	assert.NoError(t, p.CheckReadiness(ctx))
}

// TestPipelineTransformError verifies that an invalid message (poison pill) is
// skipped and the pipeline continues processing valid soundings.
func TestPipelineTransformError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)

	createTopic(t, broker, testSourceTopic)
	createTopic(t, broker, testSinkTopic)

	cfg := &config.Config{
		KafkaBrokers:     []string{broker},
		KafkaSourceTopic: testSourceTopic,
		KafkaSinkTopic:   testSinkTopic,
		KafkaGroupID:     fmt.Sprintf("test-poison-%d", time.Now().UnixNano()),
	}

	validPayload, err := json.Marshal(testProfile)
	require.NoError(t, err)
	shortPayload, err := json.Marshal(testProfile[:3])
	require.NoError(t, err)

	producer := &kafkago.Writer{
		Addr:  kafkago.TCP(broker),
		Topic: testSourceTopic,
	}
	t.Cleanup(func() { _ = producer.Close() })

	// Publish: invalid JSON, a too-short profile, then a valid one.
	require.NoError(t, producer.WriteMessages(ctx,
		kafkago.Message{Key: []byte("bad-json"), Value: []byte("not-json{{{")},
		kafkago.Message{Key: []byte("bad-short"), Value: shortPayload},
		kafkago.Message{Key: []byte("good"), Value: validPayload},
	))

	reader := kafka.NewReader(cfg, discardLogger())
	t.Cleanup(func() { _ = reader.Close() })

	metrics := observability.NewMetricsForTesting()
	transformer := pipeline.NewTransformer(discardLogger(), metrics)

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	p := pipeline.New(reader, transformer, writer, discardLogger(), metrics)

	pipelineCtx, pipelineCancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(pipelineCtx) }()

	consumer := sinkConsumer(t, broker)

	// Only the valid sounding reaches the sink.
	am := readAnalyzed(ctx, t, consumer)
	assert.Equal(t, "good", am.Key)
	assert.Greater(t, am.Result.SurfaceBased.CAPE, 0.0)

	// Verify no second message arrives (the poison pills were skipped).
	readCtx, readCancel := context.WithTimeout(ctx, 5*time.Second)
	_, err = consumer.ReadMessage(readCtx)
	readCancel()
	assert.Error(t, err, "expected no second message on sink topic")

	pipelineCancel()
	require.NoError(t, <-errCh)
}
