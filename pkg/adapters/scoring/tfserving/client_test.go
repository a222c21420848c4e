package tfserving

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diapredict/diapredict/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testVector = domain.FeatureVector{0.05, 0.05, 0.06, 0.02, -0.04, -0.03, 0, 0, 0, -0.03}

func newTestClient(endpoint string) *Client {
	return NewClient(endpoint, "test-token", 5*time.Second, zap.NewNop())
}

func TestScoreSendsNamedInputs(t *testing.T) {
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"outputs": [[152.5]]}`))
	}))
	defer srv.Close()

	value, err := newTestClient(srv.URL).Score(context.Background(), testVector)
	require.NoError(t, err)
	assert.Equal(t, 152.5, value)

	var req struct {
		Inputs map[string][]float64 `json:"inputs"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &req))
	require.Len(t, req.Inputs, domain.NumFeatures)
	for i, name := range domain.FeatureNames {
		assert.Equal(t, []float64{testVector[i]}, req.Inputs[name], "input %s", name)
	}
}

func TestScoreFallsBackToPredictionsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"predictions": [[152.5]]}`))
	}))
	defer srv.Close()

	value, err := newTestClient(srv.URL).Score(context.Background(), testVector)
	require.NoError(t, err)
	assert.Equal(t, 152.5, value)
}

func TestScoreMissingOutputsIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"something_else": 1}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Score(context.Background(), testVector)

	var parse *domain.ParseError
	require.ErrorAs(t, err, &parse)
}

func TestScoreRejectionCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream worker crashed"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Score(context.Background(), testVector)

	var rejection *domain.RemoteRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusBadGateway, rejection.StatusCode)
	assert.Contains(t, rejection.Body, "upstream worker crashed")
}
