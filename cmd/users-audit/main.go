// ABOUTME: Main entry point for the users audit run
// ABOUTME: Fetches users once, validates their emails and exits non-zero only on strict failures

package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"users-audit/core/interfaces"
	"users-audit/core/users"
	stdhttp "users-audit/infrastructure/http/standard"
	"users-audit/infrastructure/logger/structured"
	"users-audit/pkg/config"
)

func main() {
	os.Exit(run(context.Background()))
}

// run performs one fetch-validate-log pass and returns the process exit code
func run(ctx context.Context) int {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	logger, err := structured.NewStructuredLogger(structured.Options{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.File,
		RunID:    uuid.New().String(),
	})
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer logger.Close()

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(cfg.Source.Timeout),
		Logger:     logger,
	}

	pipeline := users.NewPipeline(deps, cfg.RunOptions()...)
	if _, err := pipeline.Run(ctx); err != nil {
		logger.Error("Run failed", map[string]interface{}{
			"policy": string(pipeline.Policy()),
			"error":  err.Error(),
		})
		return 1
	}

	return 0
}
