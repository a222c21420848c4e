package prediction

import (
	"context"
	"time"

	"github.com/diapredict/diapredict/pkg/domain"
	"github.com/diapredict/diapredict/pkg/ports"
	"go.uber.org/zap"
)

// Prediction outcomes reported to the metrics collector.
const (
	OutcomeSuccess          = "success"
	OutcomeValidationFailed = "validation_failed"
	OutcomeScoringFailed    = "scoring_failed"
)

// Service runs the validate / score / relay flow for a single request.
// It holds no cross-request state; concurrent requests are isolated by
// the hosting HTTP server.
type Service struct {
	scorer    ports.ModelScorer
	validator *Validator
	metrics   ports.MetricsCollector
	logger    *zap.Logger
}

// NewService creates a new prediction service
func NewService(
	scorer ports.ModelScorer,
	validator *Validator,
	metrics ports.MetricsCollector,
	logger *zap.Logger,
) *Service {
	return &Service{
		scorer:    scorer,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Predict validates the raw input and forwards the resulting feature
// vector to the remote model. One upstream attempt per call; failures
// are returned as typed domain errors.
func (s *Service) Predict(ctx context.Context, input map[string]any) (float64, error) {
	start := time.Now()

	features, err := s.validator.Validate(input)
	if err != nil {
		s.logger.Warn("input validation failed", zap.Error(err))
		s.metrics.RecordPrediction(OutcomeValidationFailed, time.Since(start))
		if verr, ok := err.(*domain.ValidationError); ok {
			s.metrics.IncValidationFailure(verr.Field)
		} else if merr, ok := err.(*domain.MissingFieldError); ok {
			s.metrics.IncValidationFailure(merr.Field)
		}
		return 0, err
	}

	callStart := time.Now()
	value, err := s.scorer.Score(ctx, features)
	s.metrics.RecordRemoteCall(remoteStatus(err), time.Since(callStart))
	if err != nil {
		s.logger.Error("remote scoring failed",
			zap.String("format", s.scorer.Format()),
			zap.Error(err))
		s.metrics.RecordPrediction(OutcomeScoringFailed, time.Since(start))
		return 0, err
	}

	s.logger.Info("prediction completed",
		zap.Float64("prediction", value),
		zap.Duration("duration", time.Since(start)))
	s.metrics.RecordPrediction(OutcomeSuccess, time.Since(start))

	return value, nil
}

// remoteStatus labels the inference call result for metrics.
func remoteStatus(err error) string {
	switch err.(type) {
	case nil:
		return "ok"
	case *domain.TransportError:
		return "transport_error"
	case *domain.RemoteRejectionError:
		return "rejected"
	case *domain.ParseError:
		return "parse_error"
	default:
		return "error"
	}
}
