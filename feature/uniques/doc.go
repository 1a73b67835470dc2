// Package uniques implements the unique item checker feature.
//
// It keeps, per player, the best known sighting of every unique item. Items
// arrive from two sources:
//  1. Clipboard: the text the game copies for a hovered item.
//  2. Trade website: every unique the player has listed, per category.
//
// # Components
//
//   - Service: gates (window focus, busy flag, username) and orchestration.
//   - Handler: HTTP endpoints for checks, syncs and stored items.
//   - Loader: Registers the feature with the application.
//   - Window, Clipboard, Chat: desktop collaborators injected by the shell.
//
// Capture and sync share one busy flag, so at most one of them runs at a time.
//
// # HTTP Endpoints
//
//   - GET /uniques/categories : Trade categories in sync order.
//   - GET /uniques/items : Stored items of the player.
//   - GET /uniques/items/:name : Stored item by full name.
//   - POST /uniques/check : Check raw item text (body), optional ?dry_run=true.
//   - POST /uniques/sync : Start a background sync (202, or 409 when busy).
//   - GET /uniques/status : Busy flag and sync progress.
package uniques
