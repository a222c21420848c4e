// Package prediction implements the core request flow of the gateway.
//
// The service coordinates a single prediction by:
//   - Validating the raw payload against the canonical feature set
//   - Sending the ordered vector to the remote model via the scorer port
//   - Recording metrics and structured logs for each outcome
//
// The validator ensures all ten features are present, numeric and
// finite before anything leaves the process.
package prediction
