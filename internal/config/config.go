package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
)

// Config holds all configuration for the prediction gateway
type Config struct {
	// Server configuration
	HTTPHost string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort int    `env:"HTTP_PORT" envDefault:"4000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`

	// Application metadata
	AppName    string `env:"APP_NAME" envDefault:"Diabetes Progression Predictor"`
	AppVersion string `env:"APP_VERSION" envDefault:"1.0.0"`

	// Scoring configuration
	Scoring ScoringConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// ScoringConfig holds the remote inference endpoint configuration
type ScoringConfig struct {
	// EndpointURL is the model serving endpoint, e.g.
	// https://<workspace>.cloud.databricks.com/serving-endpoints/<name>/invocations
	EndpointURL string `env:"MLFLOW_ENDPOINT_URL"`

	// Token authenticates against the endpoint. Never logged in full.
	Token string `env:"DATABRICKS_TOKEN"`

	// Format selects the request wire format: "mlflow" or "tfserving"
	Format string `env:"MODEL_FORMAT" envDefault:"mlflow"`

	// RequestTimeout bounds the single call to the endpoint
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds process-level timeouts
type TimeoutConfig struct {
	ShutdownTimeout time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that must be well-formed for the process to
// run at all. A missing endpoint or credential is deliberately not an
// error here: the process still starts so the health probe can report
// it (see ReadinessErrors).
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.Scoring.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.Scoring.RequestTimeout)
	}

	switch c.Scoring.Format {
	case "mlflow", "tfserving":
	default:
		return fmt.Errorf("unsupported model format: %s (must be mlflow or tfserving)", c.Scoring.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// ReadinessErrors lists required settings that are absent or unusable.
// A non-empty result means the gateway cannot reach the model and the
// health probe must report unhealthy.
func (c *Config) ReadinessErrors() []string {
	var errs []string

	if c.Scoring.EndpointURL == "" {
		errs = append(errs, "MLFLOW_ENDPOINT_URL is not set")
	} else if !strings.HasPrefix(c.Scoring.EndpointURL, "https://") {
		errs = append(errs, "MLFLOW_ENDPOINT_URL must use https")
	}

	if c.Scoring.Token == "" {
		errs = append(errs, "DATABRICKS_TOKEN is not set")
	}

	return errs
}

// LogStatus writes a redacted configuration report. The credential is
// reduced to a set/unset flag.
func (c *Config) LogStatus(logger *zap.Logger) {
	logger.Info("configuration loaded",
		zap.String("app", c.AppName),
		zap.String("version", c.AppVersion),
		zap.String("addr", c.HTTPAddr()),
		zap.Bool("debug", c.Debug),
		zap.String("model_format", c.Scoring.Format),
		zap.String("endpoint_url", c.Scoring.EndpointURL),
		zap.Bool("token_set", c.Scoring.Token != ""),
		zap.Duration("request_timeout", c.Scoring.RequestTimeout))
}

// HTTPAddr returns the HTTP server listen address
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}
