// Package store keeps the best known sighting of every unique item per
// player in a gorm managed table.
//
// # Usage
//
//	db, _ := database.Connect(cfg.Database)
//	s, err := store.Open(ctx, db)
//	rec, err := s.FindOne(ctx, "exile", "Tabula Rasa Simple Robe")
//	if rec == nil {
//		saved, err := s.Insert(ctx, candidate)
//	}
package store
