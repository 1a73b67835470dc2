// Package models defines the unique item types shared by the parser, the
// scorer, the store and the trade client.
//
// # Types
//
//   - Item: name plus raw explicit mod lines.
//   - ValueRecord: an Item owned by a player with the integers of every mod.
//   - Entry: the gorm row backing a ValueRecord in table unique_entries.
package models
