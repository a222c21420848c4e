// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - The prediction form frontend
//   - Prediction requests
//   - Health checks
//   - Prometheus metrics
package http
