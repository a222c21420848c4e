// Package domain defines the core types shared across the gateway: the
// canonical feature vector handed to the remote model and the error
// taxonomy the API layer maps to HTTP status codes.
package domain
