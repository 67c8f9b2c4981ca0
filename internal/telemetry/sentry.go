// Package telemetry wires optional error tracking.
package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config mirrors the Sentry section of the app configuration.
type Config struct {
	DSN         string
	Enabled     bool
	Environment string
	SampleRate  float64
}

// InitSentry initializes Sentry when enabled. The returned flush function is
// safe to defer even when Sentry is disabled.
func InitSentry(cfg Config, release string) (flush func(), err error) {
	if !cfg.Enabled || cfg.DSN == "" {
		return func() {}, nil
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     release,
		SampleRate:  cfg.SampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sentry: %w", err)
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}
