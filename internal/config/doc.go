// Package config provides configuration management for the prediction
// gateway.
//
// Configuration is loaded from environment variables using the env
// package. All configuration values have sensible defaults for
// development use except the inference endpoint URL and credential,
// whose absence is reported by the health probe rather than blocking
// startup.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.HTTPAddr())
package config
