// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation for every route.
//   - RayID: a unique request id stored in the context and echoed in the
//     response headers for tracing.
package middleware
