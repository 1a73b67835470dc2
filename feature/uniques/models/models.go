package models

import "time"

// Item is a unique item as seen on the trade site or in the clipboard.
type Item struct {
	// Name is the base name and type line joined by a space.
	Name string `json:"name"`
	// ExplicitMods holds the raw affix lines in description order.
	ExplicitMods []string `json:"explicitMods"`
}

// ValueRecord is an item together with its owner and numeric mod values.
type ValueRecord struct {
	ID                string  `json:"id,omitempty"`
	Username          string  `json:"username"`
	Item              Item    `json:"item"`
	ExplicitModValues [][]int `json:"explicitModValues"`
}

// Entry is the persisted form of a ValueRecord.
type Entry struct {
	ID                string   `gorm:"column:id;primaryKey;size:36"`
	Username          string   `gorm:"column:username;size:64;not null;uniqueIndex:idx_identity"`
	ItemName          string   `gorm:"column:item_name;size:255;not null;uniqueIndex:idx_identity"`
	ExplicitMods      []string `gorm:"column:explicit_mods;serializer:json"`
	ExplicitModValues [][]int  `gorm:"column:explicit_mod_values;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the table name.
func (Entry) TableName() string {
	return "unique_entries"
}

// ToRecord converts the row to a ValueRecord.
func (e Entry) ToRecord() ValueRecord {
	mods := e.ExplicitMods
	if mods == nil {
		mods = []string{}
	}
	values := e.ExplicitModValues
	if values == nil {
		values = [][]int{}
	}
	return ValueRecord{
		ID:       e.ID,
		Username: e.Username,
		Item: Item{
			Name:         e.ItemName,
			ExplicitMods: mods,
		},
		ExplicitModValues: values,
	}
}

// FromRecord builds a row from a ValueRecord. Timestamps are left to gorm.
func FromRecord(rec ValueRecord) Entry {
	return Entry{
		ID:                rec.ID,
		Username:          rec.Username,
		ItemName:          rec.Item.Name,
		ExplicitMods:      rec.Item.ExplicitMods,
		ExplicitModValues: rec.ExplicitModValues,
	}
}
