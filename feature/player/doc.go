// Package player manages the identity whose unique items are checked.
//
// The username is saved as {"username": "..."} in a JSON file under the
// user config directory so it survives restarts.
//
// # HTTP Endpoints
//
//   - GET /player : Get the configured username.
//   - PUT /player : Set the username ({"username": "exile"}).
package player
