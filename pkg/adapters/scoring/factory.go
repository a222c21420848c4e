package scoring

import (
	"fmt"
	"time"

	"github.com/diapredict/diapredict/pkg/adapters/scoring/mlflow"
	"github.com/diapredict/diapredict/pkg/adapters/scoring/tfserving"
	"github.com/diapredict/diapredict/pkg/ports"
	"go.uber.org/zap"
)

// Config holds scoring client configuration
type Config struct {
	Format      string
	EndpointURL string
	Token       string
	Timeout     time.Duration
	Logger      *zap.Logger
}

// NewScorer creates a scoring client for the configured wire format
func NewScorer(cfg *Config) (ports.ModelScorer, error) {
	switch cfg.Format {
	case "mlflow":
		return mlflow.NewClient(cfg.EndpointURL, cfg.Token, cfg.Timeout, cfg.Logger), nil
	case "tfserving":
		return tfserving.NewClient(cfg.EndpointURL, cfg.Token, cfg.Timeout, cfg.Logger), nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s", cfg.Format)
	}
}
