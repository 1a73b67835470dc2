package score

import (
	"errors"
	"fmt"
	"math"

	"unique-checker/core/utils"
	"unique-checker/feature/uniques/models"
)

var (
	// ErrIdentityMismatch is returned when records belong to different players.
	ErrIdentityMismatch = errors.New("records belong to different users")
	// ErrNameMismatch is returned when records describe different items.
	ErrNameMismatch = errors.New("records have different item names")
	// ErrShapeMismatch is returned when the mod counts differ, usually a legacy item.
	ErrShapeMismatch = errors.New("records have different explicit mods")
)

// Score reports how much better a is than b, as a percentage averaged over
// the mod slots. Positive means a is better.
//
// A slot whose sums are equal contributes 0. A slot with a zero baseline and
// a different sum yields an infinite result. Records without slots score 0.
func Score(a, b models.ValueRecord) (float64, error) {
	if a.Username != b.Username {
		return 0, fmt.Errorf("%w: %q and %q", ErrIdentityMismatch, a.Username, b.Username)
	}
	if a.Item.Name != b.Item.Name {
		return 0, fmt.Errorf("%w: %q and %q", ErrNameMismatch, a.Item.Name, b.Item.Name)
	}
	if len(a.ExplicitModValues) != len(b.ExplicitModValues) {
		return 0, fmt.Errorf("%w: %s has %d and %d slots",
			ErrShapeMismatch, a.Item.Name, len(a.ExplicitModValues), len(b.ExplicitModValues))
	}

	slots := len(a.ExplicitModValues)
	if slots == 0 {
		return 0, nil
	}

	var net float64
	for i := range slots {
		sumA := utils.Sum(a.ExplicitModValues[i])
		sumB := utils.Sum(b.ExplicitModValues[i])
		if sumA == sumB {
			continue
		}
		net += float64(sumA-sumB) / math.Abs(float64(sumB))
	}

	return net / float64(slots) * 100, nil
}
