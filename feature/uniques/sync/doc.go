// Package sync pulls a player's listed unique items from the trade website
// and feeds them to the reconciler, one category at a time.
//
// Per category the pipeline runs one search, then fetches the returned ids
// in batches (ten by default), then reconciles the accumulated items in
// arrival order. A throttle wait precedes every outbound request and every
// request is retried until it succeeds or the context is done.
//
// # Progress
//
// Progress reports the category, stage and batch of the running sync:
// idle, searching, fetching, reconciling, done.
package sync
