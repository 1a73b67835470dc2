package sync

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"unique-checker/core/metrics"
	"unique-checker/core/reconcile"
	"unique-checker/core/retry"
	"unique-checker/core/throttle"
	"unique-checker/core/utils"
	"unique-checker/feature/uniques/models"
	"unique-checker/feature/uniques/trade"

	"go.uber.org/zap"
)

const (
	endpointSearch = "search"
	endpointFetch  = "fetch"
)

// Reconciler stores the accumulated items of a category.
type Reconciler interface {
	ReconcileAll(ctx context.Context, username string, items []models.Item, opts reconcile.ReconcileOptions) (reconcile.Summary, error)
}

// State is the stage of a category sync.
type State string

const (
	StateIdle        State = "idle"
	StateSearching   State = "searching"
	StateFetching    State = "fetching"
	StateReconciling State = "reconciling"
	StateDone        State = "done"
)

// Progress is a snapshot of the running sync.
type Progress struct {
	Category string `json:"category,omitempty"`
	State    State  `json:"state"`
	Batch    int    `json:"batch,omitempty"`
	Batches  int    `json:"batches,omitempty"`
}

// Result is the outcome of one category.
type Result struct {
	Category trade.Category    `json:"category"`
	Summary  reconcile.Summary `json:"summary"`
	Err      error             `json:"-"`
	Error    string            `json:"error,omitempty"`
}

// Pipeline searches, fetches and reconciles a player's listed uniques.
type Pipeline struct {
	client     trade.Client
	reconciler Reconciler
	throttle   *throttle.Throttle
	batchSize  int
	policy     retry.Policy
	metrics    *metrics.Metrics
	logger     *zap.Logger
	notify     func(string)
	progress   atomic.Pointer[Progress]
}

// NewPipeline creates a pipeline. m may be nil.
func NewPipeline(client trade.Client, reconciler Reconciler, cfg trade.Config, m *metrics.Metrics, logger *zap.Logger) *Pipeline {
	p := &Pipeline{
		client:     client,
		reconciler: reconciler,
		throttle:   throttle.New(cfg.Throttle()),
		batchSize:  cfg.BatchSize,
		policy: retry.Policy{
			InitialBackoff: cfg.RetryBackoff(),
			Multiplier:     cfg.BackoffMultiplier,
			MaxBackoff:     cfg.MaxBackoff(),
		},
		metrics: m,
		logger:  logger,
	}
	if p.batchSize <= 0 {
		p.batchSize = 10
	}
	p.progress.Store(&Progress{State: StateIdle})
	return p
}

// SetNotifier routes player facing notices, such as retries, to fn.
func (p *Pipeline) SetNotifier(fn func(string)) {
	p.notify = fn
}

// Progress returns the current stage.
func (p *Pipeline) Progress() Progress {
	return *p.progress.Load()
}

func (p *Pipeline) setProgress(pr Progress) {
	p.progress.Store(&pr)
}

// SyncCategory pulls every listed unique of a category and reconciles them
// in arrival order. Remote calls are retried until ctx is done; a
// reconcile error stops the category.
func (p *Pipeline) SyncCategory(ctx context.Context, username string, category trade.Category) (reconcile.Summary, error) {
	p.setProgress(Progress{Category: category.Label, State: StateSearching})

	ids, err := attempt(ctx, p, endpointSearch, func(ctx context.Context) ([]string, error) {
		return p.client.Search(ctx, username, category.Key)
	})
	if err != nil {
		return reconcile.Summary{}, fmt.Errorf("search: %w", err)
	}

	batches := utils.Chunk(ids, p.batchSize)
	items := make([]models.Item, 0, len(ids))
	for i, batch := range batches {
		p.setProgress(Progress{Category: category.Label, State: StateFetching, Batch: i + 1, Batches: len(batches)})

		fetched, err := attempt(ctx, p, endpointFetch, func(ctx context.Context) ([]models.Item, error) {
			return p.client.Fetch(ctx, batch)
		})
		if err != nil {
			return reconcile.Summary{}, fmt.Errorf("fetch batch %d: %w", i+1, err)
		}
		items = append(items, fetched...)
	}

	p.setProgress(Progress{Category: category.Label, State: StateReconciling})
	summary, err := p.reconciler.ReconcileAll(ctx, username, items, reconcile.ReconcileOptions{})
	if err != nil {
		return summary, err
	}

	p.logger.Info("Synced category",
		zap.String("category", category.Label),
		zap.Int("items", len(items)),
		zap.Stringer("summary", summary),
	)
	return summary, nil
}

// SyncAll runs SyncCategory for each category in order. A failed category
// does not stop the next one; only a done ctx does.
func (p *Pipeline) SyncAll(ctx context.Context, username string, categories []trade.Category, onResult func(Result)) []Result {
	results := make([]Result, 0, len(categories))
	defer func() {
		p.setProgress(Progress{State: StateDone})
	}()

	for _, category := range categories {
		if ctx.Err() != nil {
			break
		}

		summary, err := p.SyncCategory(ctx, username, category)
		res := Result{Category: category, Summary: summary, Err: err}
		if err != nil {
			res.Error = err.Error()
			p.logger.Warn("Category sync failed", zap.String("category", category.Label), zap.Error(err))
		}
		results = append(results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return results
}

func attempt[T any](ctx context.Context, p *Pipeline, endpoint string, call func(ctx context.Context) (T, error)) (T, error) {
	policy := p.policy
	policy.OnRetry = func(n int, err error, wait time.Duration) {
		p.metrics.ObserveRetry(endpoint)
		p.logger.Info("Rejected request from trade website, trying again",
			zap.String("endpoint", endpoint),
			zap.Int("attempt", n),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		if p.notify != nil {
			p.notify(fmt.Sprintf("Rejected request #%d from trade website, trying again... %s", n, err.Error()))
		}
	}

	return retry.Do(ctx, policy, func(ctx context.Context) (T, error) {
		if err := p.throttle.Wait(ctx); err != nil {
			return *new(T), retry.Permanent(err)
		}
		v, err := call(ctx)
		p.metrics.ObserveRequest(endpoint, err)
		if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) && ctx.Err() != nil {
			return v, retry.Permanent(err)
		}
		return v, err
	})
}
