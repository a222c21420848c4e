package mlflow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/diapredict/diapredict/pkg/adapters/scoring/internal/wire"
	"github.com/diapredict/diapredict/pkg/domain"
	"go.uber.org/zap"
)

// Client scores feature vectors against an MLflow serving endpoint
// using the dataframe_split request format.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new MLflow scoring client
func NewClient(endpoint, token string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Format identifies the wire format spoken by this client
func (c *Client) Format() string { return "mlflow" }

// splitFrame is the single-row tabular record MLflow serving expects.
type splitFrame struct {
	Columns []string    `json:"columns"`
	Data    [][]float64 `json:"data"`
}

type scoreRequest struct {
	DataframeSplit splitFrame `json:"dataframe_split"`
}

type scoreResponse struct {
	Predictions json.RawMessage `json:"predictions"`
}

// Score sends one blocking scoring request to the endpoint. Transport
// failures, non-2xx responses and malformed bodies are returned as the
// corresponding domain error.
func (c *Client) Score(ctx context.Context, features domain.FeatureVector) (float64, error) {
	body, err := json.Marshal(scoreRequest{
		DataframeSplit: splitFrame{
			Columns: domain.FeatureNames,
			Data:    [][]float64{features.Values()},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode scoring request: %w", err)
	}

	start := time.Now()
	respBody, err := wire.Post(ctx, c.httpClient, c.endpoint, c.token, body)
	if err != nil {
		return 0, err
	}

	c.logger.Debug("scoring call completed",
		zap.String("endpoint", c.endpoint),
		zap.Duration("duration", time.Since(start)))

	var resp scoreResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return 0, &domain.ParseError{Reason: fmt.Sprintf("invalid JSON body: %v", err)}
	}
	if resp.Predictions == nil {
		return 0, &domain.ParseError{Reason: "missing predictions field"}
	}

	return wire.ExtractScalar(resp.Predictions)
}
