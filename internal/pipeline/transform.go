package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/sounding-analysis/internal/observability"
	"github.com/couchcryptid/sounding-analysis/internal/sounding"
)

// SoundingTransformer implements Transformer by decoding the collector's
// level list and running the sounding analysis engine over it.
type SoundingTransformer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a SoundingTransformer.
func NewTransformer(logger *slog.Logger, metrics *observability.Metrics) *SoundingTransformer {
	return &SoundingTransformer{logger: logger, metrics: metrics}
}

// Transform decodes a raw message into a profile, analyzes it, and serializes
// the result. Decode and validation failures are returned to the caller for
// skip accounting; they never stop the pipeline.
func (t *SoundingTransformer) Transform(_ context.Context, raw RawMessage) (OutputMessage, error) {
	var profile sounding.Profile
	if err := json.Unmarshal(raw.Value, &profile); err != nil {
		return OutputMessage{}, fmt.Errorf("decode sounding: %w", err)
	}

	result, err := sounding.Analyze(profile)
	if err != nil {
		return OutputMessage{}, fmt.Errorf("analyze sounding: %w", err)
	}

	t.metrics.SurfaceCAPE.Observe(result.SurfaceBased.CAPE)

	value, err := json.Marshal(result)
	if err != nil {
		return OutputMessage{}, fmt.Errorf("serialize analysis: %w", err)
	}

	return OutputMessage{
		Key:   raw.Key,
		Value: value,
		Headers: map[string]string{
			"generated_at": result.GeneratedAt.Format(time.RFC3339),
			"levels":       strconv.Itoa(len(profile)),
		},
	}, nil
}

// skipReason buckets a transform error for the skip counter.
func skipReason(err error) string {
	switch {
	case errors.Is(err, sounding.ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, sounding.ErrInvalidInput):
		return "invalid_input"
	default:
		return "decode"
	}
}
