// Package reconcile plugs unique item value records into the generic
// core/reconcile engine.
//
// The Adapter finds stored records by (username, item name), compares them
// with score.Score and writes through a Records implementation such as
// store.Store. The Reconciler wraps it with parsing, metrics and logging.
//
// # Usage
//
//	r := reconcile.NewReconciler(st, metrics, logger)
//	outcome, err := r.Reconcile(ctx, "exile", item, opts)
//	fmt.Println(outcome.Message())
package reconcile
