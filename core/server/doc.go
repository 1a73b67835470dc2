// Package server holds the HTTP control server configuration.
//
// The server is a local surface for triggering captures and syncs and for
// reading the stored stash; it binds to loopback by default and can be
// protected with an API key.
package server
