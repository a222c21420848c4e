package prediction

import (
	"context"
	"testing"
	"time"

	"github.com/diapredict/diapredict/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubScorer struct {
	value   float64
	err     error
	lastVec domain.FeatureVector
	called  bool
}

func (s *stubScorer) Score(_ context.Context, features domain.FeatureVector) (float64, error) {
	s.called = true
	s.lastVec = features
	return s.value, s.err
}

func (s *stubScorer) Format() string { return "stub" }

type recordingMetrics struct {
	outcomes     []string
	remoteStatus []string
	failedFields []string
}

func (m *recordingMetrics) RecordPrediction(outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) RecordRemoteCall(status string, _ time.Duration) {
	m.remoteStatus = append(m.remoteStatus, status)
}

func (m *recordingMetrics) IncValidationFailure(field string) {
	m.failedFields = append(m.failedFields, field)
}

func newTestService(scorer *stubScorer, metrics *recordingMetrics) *Service {
	return NewService(scorer, NewValidator(), metrics, zap.NewNop())
}

func TestPredictSuccess(t *testing.T) {
	scorer := &stubScorer{value: 152.5}
	metrics := &recordingMetrics{}

	value, err := newTestService(scorer, metrics).Predict(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 152.5, value)
	assert.True(t, scorer.called)
	assert.Equal(t, domain.FeatureVector{0.05, 0.05, 0.06, 0.02, -0.04, -0.03, 0, 0, 0, -0.03}, scorer.lastVec)
	assert.Equal(t, []string{OutcomeSuccess}, metrics.outcomes)
	assert.Equal(t, []string{"ok"}, metrics.remoteStatus)
}

func TestPredictValidationFailureSkipsScorer(t *testing.T) {
	scorer := &stubScorer{}
	metrics := &recordingMetrics{}

	input := validInput()
	delete(input, "bmi")

	_, err := newTestService(scorer, metrics).Predict(context.Background(), input)
	require.Error(t, err)
	assert.False(t, scorer.called, "scorer must not be called on invalid input")
	assert.Equal(t, []string{OutcomeValidationFailed}, metrics.outcomes)
	assert.Equal(t, []string{"bmi"}, metrics.failedFields)
	assert.Empty(t, metrics.remoteStatus)
}

func TestPredictScorerFailurePropagates(t *testing.T) {
	scorer := &stubScorer{err: &domain.RemoteRejectionError{StatusCode: 401, Body: "unauthorized"}}
	metrics := &recordingMetrics{}

	_, err := newTestService(scorer, metrics).Predict(context.Background(), validInput())

	var rejection *domain.RemoteRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, 401, rejection.StatusCode)
	assert.Equal(t, []string{OutcomeScoringFailed}, metrics.outcomes)
	assert.Equal(t, []string{"rejected"}, metrics.remoteStatus)
}
