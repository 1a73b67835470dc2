// Package reconcile implements a generic keep-the-best reconciliation between
// newly seen records and a store holding one record per identity.
//
// # Architecture
//
// 1. Engine: decides, per candidate, between insert (identity never stored),
//    update (candidate strictly better), keep (tie) and discard (worse).
//
// 2. Adapter: model-specific identity lookup, scoring and storage. The engine
//    never inspects records itself.
//
// Planning is read-only; ApplyPlan performs at most one write per candidate,
// and only for insert or update. Repeating a reconciliation therefore never
// loses the best record seen for an identity.
//
// # Usage Example
//
//	outcome, err := reconcile.Reconcile(ctx, adapter, candidate, reconcile.ReconcileOptions{})
//
//	// Plan only, for reporting
//	plan, err := reconcile.PlanOne(ctx, adapter, candidate)
//
//	// Sequence, stopping at the first error
//	outcomes, summary, err := reconcile.ReconcileAll(ctx, adapter, candidates, opts)
package reconcile
