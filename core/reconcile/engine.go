package reconcile

import (
	"context"
	"fmt"
	"math"
)

// PlanOne decides what to do with a candidate without writing anything.
func PlanOne(ctx context.Context, adapter Adapter, candidate Record) (*Plan, error) {
	existing, found, err := adapter.Find(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to find existing record: %w", adapter.Name(), err)
	}

	if !found {
		return &Plan{
			Action:    ActionInsert,
			Reason:    "not stored yet",
			Candidate: candidate,
		}, nil
	}

	delta, err := adapter.Compare(candidate, existing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", adapter.Name(), err)
	}

	plan := &Plan{
		Delta:     delta,
		Candidate: candidate,
		Existing:  existing,
	}

	// NaN compares false both ways and lands on keep
	switch {
	case delta > 0:
		plan.Action = ActionUpdate
		plan.Reason = fmt.Sprintf("%.2f%% better than stored", delta)
	case delta < 0:
		plan.Action = ActionDiscard
		plan.Reason = fmt.Sprintf("%.2f%% worse than stored", math.Abs(delta))
	default:
		plan.Action = ActionKeep
		plan.Delta = 0
		plan.Reason = "just as good as stored"
	}

	return plan, nil
}

// ApplyPlan executes the single write a plan calls for, if any.
// In dry-run mode nothing is written and Applied is false.
func ApplyPlan(ctx context.Context, adapter Adapter, plan *Plan, opts ReconcileOptions) (Outcome, error) {
	outcome := Outcome{
		Action: plan.Action,
		Delta:  plan.Delta,
		Reason: plan.Reason,
		Record: plan.Existing,
	}

	if !plan.Action.Mutates() {
		return outcome, nil
	}

	if opts.DryRun {
		if plan.Action == ActionInsert {
			outcome.Record = plan.Candidate
		}
		return outcome, nil
	}

	var (
		stored Record
		err    error
	)
	switch plan.Action {
	case ActionInsert:
		stored, err = adapter.Insert(ctx, plan.Candidate)
		if err != nil {
			return outcome, fmt.Errorf("%s: failed to insert: %w", adapter.Name(), err)
		}
	case ActionUpdate:
		stored, err = adapter.Update(ctx, plan.Existing, plan.Candidate)
		if err != nil {
			return outcome, fmt.Errorf("%s: failed to update: %w", adapter.Name(), err)
		}
	}

	outcome.Record = stored
	outcome.Applied = true
	return outcome, nil
}

// Reconcile plans and applies one candidate.
func Reconcile(ctx context.Context, adapter Adapter, candidate Record, opts ReconcileOptions) (Outcome, error) {
	plan, err := PlanOne(ctx, adapter, candidate)
	if err != nil {
		return Outcome{}, err
	}
	return ApplyPlan(ctx, adapter, plan, opts)
}

// ReconcileAll reconciles candidates in order. It stops at the first error
// and returns the outcomes gathered so far alongside it.
func ReconcileAll(ctx context.Context, adapter Adapter, candidates []Record, opts ReconcileOptions) ([]Outcome, Summary, error) {
	outcomes := make([]Outcome, 0, len(candidates))
	var summary Summary

	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return outcomes, summary, err
		}

		outcome, err := Reconcile(ctx, adapter, candidate, opts)
		if err != nil {
			return outcomes, summary, fmt.Errorf("candidate %d: %w", i, err)
		}
		outcomes = append(outcomes, outcome)
		summary.Add(outcome)
	}

	return outcomes, summary, nil
}
