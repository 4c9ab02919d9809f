// ABOUTME: Pipeline runs fetch then process once, sharing one policy between both steps
// ABOUTME: Strict runs return step-tagged errors; lenient runs always complete

package users

import (
	"context"
	"fmt"

	"users-audit/core/config"
	coreerrors "users-audit/core/errors"
	"users-audit/core/interfaces"
)

// Pipeline wires a Fetcher and a Processor built from the same RunConfig
type Pipeline struct {
	deps      interfaces.Dependencies
	cfg       config.RunConfig
	fetcher   *Fetcher
	processor *Processor
}

// NewPipeline creates a pipeline; opts apply to both steps
func NewPipeline(deps interfaces.Dependencies, opts ...config.RunOption) *Pipeline {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	return &Pipeline{
		deps:      deps,
		cfg:       config.NewRunConfig(opts...),
		fetcher:   NewFetcher(deps, opts...),
		processor: NewProcessor(deps, opts...),
	}
}

// Policy returns the policy shared by both steps
func (p *Pipeline) Policy() config.Policy {
	return p.cfg.Policy
}

// Run fetches users and, when any were returned, processes them.
// Errors are only returned under PolicyStrict and name the failing step.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	users, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return Report{}, coreerrors.WrapError(err, "fetch users")
	}

	if len(users) == 0 {
		p.deps.Logger.Info("No users processed", map[string]interface{}{
			"policy": string(p.cfg.Policy),
		})
		return Report{}, nil
	}

	report, err := p.processor.ProcessWithReport(users)
	if err != nil {
		return report, coreerrors.WrapError(err, "process users")
	}

	p.deps.Logger.Info(fmt.Sprintf("Processed %d users", report.Total()), map[string]interface{}{
		"valid":   report.Valid,
		"invalid": report.Invalid,
		"skipped": report.Skipped,
	})

	return report, nil
}

// RunLenient runs the pipeline with PolicyLenient
func RunLenient(ctx context.Context, deps interfaces.Dependencies, opts ...config.RunOption) Report {
	opts = append(opts, config.WithLenient())
	report, _ := NewPipeline(deps, opts...).Run(ctx)
	return report
}

// RunStrict runs the pipeline with PolicyStrict
func RunStrict(ctx context.Context, deps interfaces.Dependencies, opts ...config.RunOption) (Report, error) {
	opts = append(opts, config.WithStrict())
	return NewPipeline(deps, opts...).Run(ctx)
}
