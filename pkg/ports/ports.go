package ports

import (
	"context"
	"time"

	"github.com/diapredict/diapredict/pkg/domain"
)

// ModelScorer sends a validated feature vector to a remote inference
// endpoint and returns the scalar prediction. Implementations make a
// single blocking call bounded by the configured timeout; retries and
// circuit breaking are out of scope.
type ModelScorer interface {
	// Score returns the model output for the given features. Errors are
	// one of domain.TransportError, domain.RemoteRejectionError or
	// domain.ParseError.
	Score(ctx context.Context, features domain.FeatureVector) (float64, error)

	// Format identifies the wire format spoken by this scorer.
	Format() string
}

// MetricsCollector records gateway metrics.
type MetricsCollector interface {
	RecordPrediction(outcome string, duration time.Duration)
	RecordRemoteCall(status string, duration time.Duration)
	IncValidationFailure(field string)
}
