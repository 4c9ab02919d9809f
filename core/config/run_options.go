// ABOUTME: Run configuration shared by the fetch and process steps
// ABOUTME: Carries the single error-propagation policy and the users endpoint

package config

import (
	"fmt"
	"strings"
)

// DefaultUsersURL is the endpoint of the reference deployment
const DefaultUsersURL = "https://jsonplaceholder.typicode.com/users"

// Policy selects how failures surface to the caller
type Policy string

const (
	// PolicyLenient logs failures and degrades to "no users processed"
	PolicyLenient Policy = "lenient"

	// PolicyStrict returns failures to the caller
	PolicyStrict Policy = "strict"
)

// ParsePolicy converts a configuration value into a Policy.
// Matching is case-insensitive; an empty value yields PolicyLenient.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyLenient:
		return PolicyLenient, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown policy %q: must be 'lenient' or 'strict'", value)
	}
}

// IsStrict reports whether errors should be propagated
func (p Policy) IsStrict() bool {
	return p == PolicyStrict
}

// RunConfig controls a single fetch-validate-log run
type RunConfig struct {
	// Policy applies to both the fetcher and the processor
	Policy Policy

	// UsersURL is the endpoint fetched once per run
	UsersURL string
}

// DefaultRunConfig returns the reference behaviour: lenient, jsonplaceholder endpoint
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Policy:   PolicyLenient,
		UsersURL: DefaultUsersURL,
	}
}

// RunOption is a functional option for configuring a run
type RunOption func(*RunConfig)

// WithPolicy sets the error-propagation policy
func WithPolicy(policy Policy) RunOption {
	return func(c *RunConfig) {
		c.Policy = policy
	}
}

// WithStrict selects PolicyStrict
func WithStrict() RunOption {
	return WithPolicy(PolicyStrict)
}

// WithLenient selects PolicyLenient
func WithLenient() RunOption {
	return WithPolicy(PolicyLenient)
}

// WithUsersURL overrides the users endpoint
func WithUsersURL(url string) RunOption {
	return func(c *RunConfig) {
		c.UsersURL = url
	}
}

// NewRunConfig creates a run configuration with the given options
func NewRunConfig(opts ...RunOption) RunConfig {
	cfg := DefaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
