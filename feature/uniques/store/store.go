package store

import (
	"context"
	"errors"
	"fmt"

	"unique-checker/feature/uniques/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when updating an entry that does not exist.
var ErrNotFound = errors.New("entry not found")

// Store persists one value record per (username, item name).
type Store struct {
	db *gorm.DB
}

// New wraps db without touching the schema.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open wraps db and migrates the entries table.
func Open(ctx context.Context, db *gorm.DB) (*Store, error) {
	s := New(db)
	if err := s.Migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Migrate creates or updates the entries table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Entry{}); err != nil {
		return fmt.Errorf("failed to migrate entries: %w", err)
	}
	return nil
}

// FindOne returns the stored record of an item, or nil when there is none.
func (s *Store) FindOne(ctx context.Context, username, name string) (*models.ValueRecord, error) {
	var entry models.Entry
	err := s.db.WithContext(ctx).
		Where("username = ? AND item_name = ?", username, name).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %q: %w", name, err)
	}

	rec := entry.ToRecord()
	return &rec, nil
}

// Insert stores a new record and returns it with its assigned id.
func (s *Store) Insert(ctx context.Context, rec models.ValueRecord) (models.ValueRecord, error) {
	entry := models.FromRecord(rec)
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return models.ValueRecord{}, fmt.Errorf("failed to insert %q: %w", rec.Item.Name, err)
	}
	return entry.ToRecord(), nil
}

// Update replaces the item and values of the entry with the given id.
// The identity columns are left untouched.
func (s *Store) Update(ctx context.Context, id string, rec models.ValueRecord) error {
	entry := models.FromRecord(rec)
	entry.ID = id

	result := s.db.WithContext(ctx).
		Model(&models.Entry{ID: id}).
		Select("ItemName", "ExplicitMods", "ExplicitModValues").
		Updates(&entry)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// List returns every record of a player ordered by item name.
func (s *Store) List(ctx context.Context, username string) ([]models.ValueRecord, error) {
	var entries []models.Entry
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		Order("item_name").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	records := make([]models.ValueRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.ToRecord())
	}
	return records, nil
}
