package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/sounding-analysis/internal/observability"
)

// Extractor reads the next raw sounding message, blocking until one is
// available or the context is cancelled.
type Extractor interface {
	Extract(ctx context.Context) (RawMessage, error)
}

// Transformer turns a raw sounding message into an analysis output message.
type Transformer interface {
	Transform(ctx context.Context, raw RawMessage) (OutputMessage, error)
}

// Loader writes one output message to the destination.
type Loader interface {
	Load(ctx context.Context, msg OutputMessage) error
}

// Pipeline runs the extract-analyze-load loop, one sounding per message.
// Soundings are processed strictly one at a time; there is no batching.
type Pipeline struct {
	extractor   Extractor
	transformer Transformer
	loader      Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, t Transformer, l Loader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once the pipeline has processed at least one
// message.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any soundings yet")
	}
	return nil
}

// Run executes the loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started")
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	// Keeps retry storms short while avoiding tight loops during outages.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if !p.processOne(ctx, &backoff, maxBackoff) {
			return nil
		}
	}
}

// processOne handles a single extract-transform-load cycle. Returns false if
// the pipeline should stop.
func (p *Pipeline) processOne(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	start := time.Now()

	raw, err := p.extractor.Extract(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract failed", "error", err)
		return p.backoffOrStop(ctx, backoff, maxBackoff)
	}

	p.metrics.SoundingsConsumed.Inc()
	*backoff = 200 * time.Millisecond

	out, err := p.transformer.Transform(ctx, raw)
	if err != nil {
		// A bad sounding is skipped, not retried: reprocessing cannot fix it.
		p.logger.Warn("analysis skipped",
			"error", err,
			"topic", raw.Topic,
			"partition", raw.Partition,
			"offset", raw.Offset,
		)
		p.metrics.SoundingsSkipped.WithLabelValues(skipReason(err)).Inc()
		p.commitOffset(ctx, raw)
		return true
	}

	if err := p.loader.Load(ctx, out); err != nil {
		p.logger.Error("load failed", "error", err)
		return p.backoffOrStop(ctx, backoff, maxBackoff)
	}

	p.metrics.AnalysesProduced.Inc()
	p.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	p.commitOffset(ctx, raw)
	p.ready.Store(true)
	return true
}

// backoffOrStop sleeps with the current backoff and advances it. Returns
// false if the pipeline should stop.
func (p *Pipeline) backoffOrStop(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !sleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = nextBackoff(*backoff, maxBackoff)
	return true
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw RawMessage) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
