package reconcile

import (
	"context"
	"fmt"

	"unique-checker/core/reconcile"
	"unique-checker/feature/uniques/models"
	"unique-checker/feature/uniques/score"
)

// Records is the storage the adapter reads and writes.
type Records interface {
	FindOne(ctx context.Context, username, name string) (*models.ValueRecord, error)
	Insert(ctx context.Context, rec models.ValueRecord) (models.ValueRecord, error)
	Update(ctx context.Context, id string, rec models.ValueRecord) error
}

// Adapter implements reconcile.Adapter for unique item value records.
type Adapter struct {
	records Records
}

// NewAdapter creates an adapter over records.
func NewAdapter(records Records) *Adapter {
	return &Adapter{records: records}
}

func (a *Adapter) Name() string {
	return "uniques"
}

func (a *Adapter) Find(ctx context.Context, candidate reconcile.Record) (reconcile.Record, bool, error) {
	rec, err := asValueRecord(candidate)
	if err != nil {
		return nil, false, err
	}

	existing, err := a.records.FindOne(ctx, rec.Username, rec.Item.Name)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, nil
	}
	return *existing, true, nil
}

func (a *Adapter) Compare(candidate, existing reconcile.Record) (float64, error) {
	c, err := asValueRecord(candidate)
	if err != nil {
		return 0, err
	}
	e, err := asValueRecord(existing)
	if err != nil {
		return 0, err
	}
	return score.Score(c, e)
}

func (a *Adapter) Insert(ctx context.Context, candidate reconcile.Record) (reconcile.Record, error) {
	rec, err := asValueRecord(candidate)
	if err != nil {
		return nil, err
	}
	return a.records.Insert(ctx, rec)
}

// Update replaces the stored item by id, keeping the stored identity.
func (a *Adapter) Update(ctx context.Context, existing, candidate reconcile.Record) (reconcile.Record, error) {
	e, err := asValueRecord(existing)
	if err != nil {
		return nil, err
	}
	c, err := asValueRecord(candidate)
	if err != nil {
		return nil, err
	}

	c.ID = e.ID
	c.Username = e.Username
	if err := a.records.Update(ctx, e.ID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func asValueRecord(r reconcile.Record) (models.ValueRecord, error) {
	switch v := r.(type) {
	case models.ValueRecord:
		return v, nil
	case *models.ValueRecord:
		if v != nil {
			return *v, nil
		}
	}
	return models.ValueRecord{}, fmt.Errorf("unexpected record type %T", r)
}
