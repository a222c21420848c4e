package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewScorerSelectsFormat(t *testing.T) {
	for _, format := range []string{"mlflow", "tfserving"} {
		scorer, err := NewScorer(&Config{
			Format:      format,
			EndpointURL: "https://example.com/invocations",
			Token:       "test-token",
			Timeout:     time.Second,
			Logger:      zap.NewNop(),
		})
		require.NoError(t, err)
		assert.Equal(t, format, scorer.Format())
	}
}

func TestNewScorerRejectsUnknownFormat(t *testing.T) {
	_, err := NewScorer(&Config{Format: "onnx", Logger: zap.NewNop()})
	assert.Error(t, err)
}
