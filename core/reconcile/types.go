package reconcile

import "fmt"

// Record is a model-specific value the adapter knows how to store and compare.
type Record any

// ActionType represents the decision taken for a candidate record.
type ActionType string

const (
	// ActionInsert stores a candidate whose identity was never seen.
	ActionInsert ActionType = "insert"
	// ActionUpdate replaces the stored record with a strictly better candidate.
	ActionUpdate ActionType = "update"
	// ActionKeep leaves the stored record untouched on a tie.
	ActionKeep ActionType = "keep"
	// ActionDiscard drops a candidate that is worse than the stored record.
	ActionDiscard ActionType = "discard"
)

// Mutates reports whether the action writes to the store.
func (a ActionType) Mutates() bool {
	return a == ActionInsert || a == ActionUpdate
}

// Plan is the read-only decision for one candidate.
type Plan struct {
	// Action is the decision.
	Action ActionType `json:"action"`

	// Delta is the candidate's score relative to the existing record, in percent.
	// Zero for inserts.
	Delta float64 `json:"delta"`

	// Reason explains the decision.
	Reason string `json:"reason"`

	// Candidate is the newly seen record.
	Candidate Record `json:"-"`

	// Existing is the stored record, nil for inserts.
	Existing Record `json:"-"`
}

// Outcome is the result of reconciling one candidate.
type Outcome struct {
	// Action is the decision taken.
	Action ActionType `json:"action"`

	// Delta is the candidate's score relative to the existing record, in percent.
	Delta float64 `json:"delta"`

	// Applied is true when the action was written to the store.
	Applied bool `json:"applied"`

	// Reason explains the decision.
	Reason string `json:"reason"`

	// Record is the record the store now holds for the identity
	// (the candidate when planned as insert in dry-run mode).
	Record Record `json:"record"`
}

// Summary provides aggregate counts over several outcomes.
type Summary struct {
	Total     int `json:"total"`
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Kept      int `json:"kept"`
	Discarded int `json:"discarded"`
}

// Add counts one outcome.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch o.Action {
	case ActionInsert:
		s.Inserted++
	case ActionUpdate:
		s.Updated++
	case ActionKeep:
		s.Kept++
	case ActionDiscard:
		s.Discarded++
	}
}

// String renders the summary for log lines.
func (s Summary) String() string {
	return fmt.Sprintf("total=%d inserted=%d updated=%d kept=%d discarded=%d",
		s.Total, s.Inserted, s.Updated, s.Kept, s.Discarded)
}

// ReconcileOptions controls whether decisions are written.
type ReconcileOptions struct {
	// DryRun plans without executing any mutation.
	DryRun bool
}
