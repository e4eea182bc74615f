// Package batch runs many independent chart computations over a worker
// pool. One birth is one job; jobs never share mutable state, so the only
// coordination is the job feed and the result slice. Provider calls are the
// single blocking boundary and the only place rate limiting applies.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/jyotish/chart"
	"github.com/teranos/jyotish/ephem"
	"github.com/teranos/jyotish/errors"
	"github.com/teranos/jyotish/graha"
	"github.com/teranos/jyotish/logger"
)

// Config sizes the pool and throttles the ephemeris provider.
type Config struct {
	// Workers is the number of concurrent chart computations.
	Workers int
	// ProviderRate caps provider calls per second across all workers.
	// Zero means unlimited.
	ProviderRate float64
	// ProviderBurst is the limiter burst size when ProviderRate is set.
	ProviderBurst int
}

// DefaultConfig returns a small pool with no provider throttle.
func DefaultConfig() Config {
	return Config{
		Workers:       4,
		ProviderBurst: 1,
	}
}

// Validate rejects a config the pool cannot run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return errors.Configf("batch workers must be at least 1, got %d", c.Workers)
	}
	if c.ProviderRate < 0 {
		return errors.Configf("provider rate must not be negative, got %f", c.ProviderRate)
	}
	if c.ProviderRate > 0 && c.ProviderBurst < 1 {
		return errors.Configf("provider burst must be at least 1 when rate limiting, got %d", c.ProviderBurst)
	}
	return nil
}

// Result is the outcome of one job. Exactly one of Chart and Err is set.
type Result struct {
	JobID uuid.UUID
	Index int
	Input chart.BirthInput
	Chart *chart.Chart
	Err   error
}

// Pool computes charts concurrently against a shared provider.
type Pool struct {
	cfg      Config
	provider ephem.Provider
	weights  chart.StrengthWeights
	log      *zap.SugaredLogger
}

// NewPool builds a pool. When the config sets a provider rate, the provider
// is wrapped in a limiter shared by all workers.
func NewPool(cfg Config, provider ephem.Provider, weights chart.StrengthWeights) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errors.Configf("no ephemeris provider configured")
	}
	if cfg.ProviderRate > 0 {
		provider = &limitedProvider{
			inner:   provider,
			limiter: rate.NewLimiter(rate.Limit(cfg.ProviderRate), cfg.ProviderBurst),
		}
	}
	return &Pool{
		cfg:      cfg,
		provider: provider,
		weights:  weights,
		log:      logger.ComponentLogger("batch"),
	}, nil
}

// Run computes one chart per input and returns exactly len(inputs) results
// in input order. A failed job carries its error in its own result slot and
// never affects the others. Cancelling ctx abandons not-yet-started jobs;
// in-flight computations finish or fail on their own provider calls.
func (p *Pool) Run(ctx context.Context, inputs []chart.BirthInput) []Result {
	start := time.Now()
	batchID := uuid.New()

	results := make([]Result, len(inputs))
	jobs := make(chan int)

	log := logger.ChildLogger(p.log, logger.FieldBatchID, batchID.String())
	log.Infow("batch started",
		logger.FieldBatchSize, len(inputs),
		logger.FieldWorkers, p.cfg.Workers)

	var wg sync.WaitGroup
	for w := 0; w < p.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.runJob(ctx, i, inputs[i], log)
			}
		}()
	}

feed:
	for i := range inputs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			// Mark this and every remaining job abandoned.
			for j := i; j < len(inputs); j++ {
				results[j] = Result{
					JobID: uuid.New(),
					Index: j,
					Input: inputs[j],
					Err:   errors.WrapEphemeris(ctx.Err(), "batch cancelled before job started"),
				}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	log.Infow("batch finished",
		logger.FieldBatchSize, len(inputs),
		logger.FieldCount, len(inputs)-failed,
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return results
}

func (p *Pool) runJob(ctx context.Context, index int, in chart.BirthInput, log *zap.SugaredLogger) Result {
	jobID := uuid.New()
	c, err := chart.Compute(ctx, in, p.provider, p.weights)
	if err != nil {
		log.Warnw("chart computation failed",
			logger.FieldJobID, jobID.String(),
			logger.FieldMoment, in.Instant,
			logger.FieldError, err)
	}
	return Result{JobID: jobID, Index: index, Input: in, Chart: c, Err: err}
}

// limitedProvider throttles position queries with a shared token bucket.
// Wait respects the caller's context, so cancellation also unblocks workers
// parked on the limiter.
type limitedProvider struct {
	inner   ephem.Provider
	limiter *rate.Limiter
}

var _ ephem.Provider = (*limitedProvider)(nil)

func (p *limitedProvider) Position(ctx context.Context, g graha.Graha, instant time.Time) (ephem.TropicalPosition, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return ephem.TropicalPosition{}, errors.WrapEphemeris(err, "waiting for provider rate limiter")
	}
	return p.inner.Position(ctx, g, instant)
}
