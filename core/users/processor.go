// ABOUTME: Processor validates each user's email and logs one line per record
// ABOUTME: Records are handled strictly in input order with no shared state between them

package users

import (
	"fmt"

	"users-audit/core/config"
	"users-audit/core/domain"
	coreerrors "users-audit/core/errors"
	"users-audit/core/interfaces"
	"users-audit/pkg/utils/email"
)

// Report summarises one Process call
type Report struct {
	Valid   int
	Invalid int
	// Skipped counts malformed records passed over under PolicyLenient
	Skipped int
}

// Total returns the number of records that produced a log line
func (r Report) Total() int {
	return r.Valid + r.Invalid + r.Skipped
}

// Processor checks user emails and reports the outcome per record
type Processor struct {
	deps interfaces.Dependencies
	cfg  config.RunConfig
}

// NewProcessor creates a new processor instance
func NewProcessor(deps interfaces.Dependencies, opts ...config.RunOption) *Processor {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	return &Processor{
		deps: deps,
		cfg:  config.NewRunConfig(opts...),
	}
}

// Process validates and logs every user. See ProcessWithReport.
func (p *Processor) Process(users []domain.User) error {
	_, err := p.ProcessWithReport(users)
	return err
}

// ProcessWithReport validates and logs every user and returns the counts.
//
// Under PolicyStrict an empty batch is an InvalidInputError and the first
// malformed record aborts the batch with a MalformedRecordError. Under
// PolicyLenient an empty batch is a no-op and malformed records are logged
// at warn level and skipped.
func (p *Processor) ProcessWithReport(users []domain.User) (Report, error) {
	var report Report

	if len(users) == 0 {
		if p.cfg.Policy.IsStrict() {
			return report, &coreerrors.InvalidInputError{Message: "users must be a non-empty list"}
		}
		p.deps.Logger.Warn("No users to process", nil)
		return report, nil
	}

	for i := range users {
		u := &users[i]

		if err := u.Validate(i); err != nil {
			if p.cfg.Policy.IsStrict() {
				return report, err
			}
			p.deps.Logger.Warn(fmt.Sprintf("Skipping malformed user record: %v", err), map[string]interface{}{
				"user_id": u.ID,
				"index":   i,
			})
			report.Skipped++
			continue
		}

		if email.IsValid(u.EmailAddress()) {
			p.deps.Logger.Info(fmt.Sprintf("ID: %d, Name: %s, Email: %s, Company: %s",
				u.ID, u.Name, u.EmailAddress(), u.CompanyName()), map[string]interface{}{
				"user_id": u.ID,
			})
			report.Valid++
			continue
		}

		p.deps.Logger.Error(fmt.Sprintf("Invalid email for user ID %d: %s", u.ID, u.EmailAddress()), map[string]interface{}{
			"user_id": u.ID,
		})
		report.Invalid++
	}

	return report, nil
}
