package reconcile

import "context"

// Adapter defines the model-specific half of a keep-the-best reconciliation.
// The engine decides; the adapter knows identity, storage and scoring.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "uniques").
	Name() string

	// Find loads the stored record sharing the candidate's identity.
	// found is false when the identity was never stored.
	Find(ctx context.Context, candidate Record) (existing Record, found bool, err error)

	// Compare returns how much better candidate is than existing, in percent.
	// Positive means better. Errors mean the two are not comparable.
	Compare(candidate, existing Record) (float64, error)

	// Insert stores a candidate for a new identity and returns the stored record.
	Insert(ctx context.Context, candidate Record) (Record, error)

	// Update replaces existing in place with candidate, keeping the identity,
	// and returns the stored record.
	Update(ctx context.Context, existing, candidate Record) (Record, error)
}
