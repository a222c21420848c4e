package tfserving

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

// Client scores feature vectors against a TensorFlow Serving style
// endpoint using the named-inputs request format.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new TensorFlow Serving scoring client
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
func (c *Client) Format() string { return "tfserving" }

type scoreRequest struct {
	// Inputs maps each feature name to a one-element column, the
	// serving equivalent of a single-row record.
	Inputs map[string][]float64 `json:"inputs"`
}

type scoreResponse struct {
	Outputs     json.RawMessage `json:"outputs"`
	Predictions json.RawMessage `json:"predictions"`
}

// Score sends one blocking scoring request to the endpoint. The result
// scalar is read from the "outputs" field, falling back to
// "predictions" for servers that answer in the tabular envelope.
func (c *Client) Score(ctx context.Context, features domain.FeatureVector) (float64, error) {
	inputs := make(map[string][]float64, domain.NumFeatures)
	for i, name := range domain.FeatureNames {
		inputs[name] = []float64{features[i]}
	}

	body, err := json.Marshal(scoreRequest{Inputs: inputs})
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

	switch {
	case resp.Outputs != nil:
		return wire.ExtractScalar(resp.Outputs)
	case resp.Predictions != nil:
		return wire.ExtractScalar(resp.Predictions)
	default:
		return 0, &domain.ParseError{Reason: "missing outputs field"}
	}
}
