// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// request path always starts at the root
	if !strings.HasPrefix(cfg.Fetch.Path, "/") {
		cfg.Fetch.Path = "/" + cfg.Fetch.Path
	}

	cfg.Status.Protocol = strings.ToLower(cfg.Status.Protocol)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	// Skip the status block if it is not opted in
	if !cfg.Status.Enabled() {
		return
	}

	// Normalize device_name:
	// - ASCII already validated
	// - Truncate to max 16 characters
	if len(cfg.Status.DeviceName) > 16 {
		cfg.Status.DeviceName = cfg.Status.DeviceName[:16]
	}
}
