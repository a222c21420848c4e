package http

import (
	"net/http"

	"github.com/diapredict/diapredict/pkg/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PredictResponse is the success envelope for /predict
type PredictResponse struct {
	Success    bool    `json:"success"`
	Prediction float64 `json:"prediction"`
}

// ErrorResponse is the failure envelope for /predict
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleIndex serves the embedded prediction form
func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// handlePredict runs the validate / score / relay flow. Validation
// problems come back as 400, upstream problems as 500; the response
// never carries the credential.
func (s *Server) handlePredict(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid JSON body: " + err.Error(),
		})
		return
	}

	if len(input) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "no data provided in request body",
		})
		return
	}

	value, err := s.service.Predict(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Success:    true,
		Prediction: value,
	})
}

// handleHealth is a local readiness probe: it reports whether required
// configuration is present without calling the inference endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	if missing := s.cfg.ReadinessErrors(); len(missing) > 0 {
		s.logger.Warn("health check failed", zap.Strings("errors", missing))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "unhealthy",
			"errors": missing,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"app":     s.cfg.AppName,
		"version": s.cfg.AppVersion,
	})
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch err.(type) {
	case *domain.ValidationError, *domain.MissingFieldError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
