// Package database opens the GORM connection backing the local item store.
//
// SQLite is the default driver: the database lives in a single file that is
// created, together with its directory, on first use. MySQL is supported for
// users who keep their stash history on a shared server.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("failed to open store: %w", err)
//	}
package database
