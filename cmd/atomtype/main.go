// Command atomtype inspects typer vocabularies and validates mapping
// files before they reach a training pipeline, surfacing the library's
// construction-time errors with context.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Build-time variables injected via ldflags.
var version = "dev"

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr flush

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. ATOMTYPE_DEBUG=1 switches to the
// human-oriented development encoder with debug level enabled.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("ATOMTYPE_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	return cfg.Build()
}
