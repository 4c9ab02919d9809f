// Package core contains the business logic of the users audit run.
// It has no knowledge of concrete transports or logging backends.
//
// The core package is organized into several sub-packages:
//
// - domain: The User record as supplied by the remote API
// - users: Fetcher, Processor and the Pipeline that runs them once
// - config: The error-propagation Policy and per-run options
// - errors: Typed errors for fetch, response-shape, input and record failures
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "users-audit/core/config"
//	    "users-audit/core/interfaces"
//	    "users-audit/core/users"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	report, err := users.NewPipeline(deps, config.WithStrict()).Run(ctx)
//	if err != nil {
//	    // err names the failing step, e.g. "fetch users: ..."
//	}
package core
