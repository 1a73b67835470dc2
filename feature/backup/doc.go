// Package backup exports stash snapshots to S3 compatible object storage
// and restores them.
//
// Snapshots are JSON objects stored at snapshots/<username>/<UTC time>.json.
// A restore goes through reconciliation, so it never replaces a stored
// item with a worse one.
//
// # HTTP Endpoints
//
//   - POST /backup : Export a snapshot.
//   - GET /backup : List snapshots of the player.
//   - POST /backup/restore : Restore a snapshot ({"object": "snapshots/exile/20260101T000000Z.json"}).
package backup
