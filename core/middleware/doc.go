// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the inventory endpoints.
//   - rayid: generates a Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally in the start command.
package middleware
