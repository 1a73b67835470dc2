package reconcile

import (
	"context"
	"fmt"
	"math"

	"unique-checker/core/metrics"
	"unique-checker/core/reconcile"
	"unique-checker/feature/uniques/models"
	"unique-checker/feature/uniques/mods"

	"go.uber.org/zap"
)

// Outcome is the decision taken for one sighting.
type Outcome struct {
	Action  reconcile.ActionType `json:"action"`
	Delta   float64              `json:"delta"`
	Applied bool                 `json:"applied"`
	Item    models.Item          `json:"item"`
	// Stored is the record kept in the store after the decision.
	Stored models.ValueRecord `json:"stored"`
}

// Message renders the outcome the way it is shown to the player.
func (o Outcome) Message() string {
	switch o.Action {
	case reconcile.ActionInsert:
		return fmt.Sprintf("Found a keeper (%s not in stash yet)", o.Item.Name)
	case reconcile.ActionUpdate:
		return fmt.Sprintf("Found a keeper (this item %s is %.2f%% better than stored item)", o.Item.Name, o.Delta)
	case reconcile.ActionDiscard:
		return fmt.Sprintf("Chuck it away (this item %s is %.2f%% worse than stored item)", o.Item.Name, math.Abs(o.Delta))
	default:
		return fmt.Sprintf("Chuck it away (this item %s is just as good as stored item)", o.Item.Name)
	}
}

// Reconciler keeps the best sighting of every item.
type Reconciler struct {
	adapter *Adapter
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewReconciler creates a reconciler over records. m may be nil.
func NewReconciler(records Records, m *metrics.Metrics, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		adapter: NewAdapter(records),
		metrics: m,
		logger:  logger,
	}
}

// Reconcile parses item for username and stores it if it is new or better
// than the stored one. At most one write happens per call.
func (r *Reconciler) Reconcile(ctx context.Context, username string, item models.Item, opts reconcile.ReconcileOptions) (Outcome, error) {
	candidate := mods.ParseValues(username, item)

	result, err := reconcile.Reconcile(ctx, r.adapter, candidate, opts)
	if err != nil {
		return Outcome{}, err
	}
	return r.observe(username, item, result), nil
}

func (r *Reconciler) observe(username string, item models.Item, result reconcile.Outcome) Outcome {
	outcome := Outcome{
		Action:  result.Action,
		Delta:   result.Delta,
		Applied: result.Applied,
		Item:    item,
	}
	if stored, ok := result.Record.(models.ValueRecord); ok {
		outcome.Stored = stored
	}

	r.metrics.ObserveOutcome(string(result.Action))
	r.logger.Debug("Reconciled item",
		zap.String("username", username),
		zap.String("item", item.Name),
		zap.String("action", string(result.Action)),
		zap.Float64("delta", result.Delta),
		zap.Bool("applied", result.Applied),
		zap.String("reason", result.Reason),
	)

	return outcome
}

// ReconcileAll reconciles items in order and stops at the first error.
func (r *Reconciler) ReconcileAll(ctx context.Context, username string, items []models.Item, opts reconcile.ReconcileOptions) (reconcile.Summary, error) {
	candidates := make([]reconcile.Record, len(items))
	for i, item := range items {
		candidates[i] = mods.ParseValues(username, item)
	}

	results, summary, err := reconcile.ReconcileAll(ctx, r.adapter, candidates, opts)
	for i, result := range results {
		r.observe(username, items[i], result)
	}
	if err != nil {
		if ctx.Err() == nil && len(results) < len(items) {
			return summary, fmt.Errorf("%s: %w", items[len(results)].Name, err)
		}
		return summary, err
	}
	return summary, nil
}
