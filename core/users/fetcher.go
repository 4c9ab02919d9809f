// ABOUTME: Fetcher retrieves the batch of user records from the users endpoint
// ABOUTME: Checks the response shape and applies the run's error-propagation policy

package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"users-audit/core/config"
	"users-audit/core/domain"
	coreerrors "users-audit/core/errors"
	"users-audit/core/interfaces"
)

// maxBodyBytes caps how much of the response body is read
const maxBodyBytes = 10 << 20

// Fetcher loads user records with a single GET request
type Fetcher struct {
	deps         interfaces.Dependencies
	cfg          config.RunConfig
	maxBodyBytes int64
}

// NewFetcher creates a new fetcher instance
func NewFetcher(deps interfaces.Dependencies, opts ...config.RunOption) *Fetcher {
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	return &Fetcher{
		deps:         deps,
		cfg:          config.NewRunConfig(opts...),
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch retrieves all users.
//
// Under PolicyStrict a FetchFailedError or MalformedResponseError is returned.
// Under PolicyLenient the failure is logged and an empty slice is returned
// with a nil error.
func (f *Fetcher) Fetch(ctx context.Context) ([]domain.User, error) {
	f.deps.Logger.Info("Fetching users...", map[string]interface{}{
		"url": f.cfg.UsersURL,
	})

	users, status, err := f.fetch(ctx)
	if err != nil {
		if f.cfg.Policy.IsStrict() {
			return nil, err
		}
		f.deps.Logger.Error(fmt.Sprintf("Failed to fetch users: %s", failureMessage(err)), map[string]interface{}{
			"url":   f.cfg.UsersURL,
			"error": err.Error(),
		})
		return []domain.User{}, nil
	}

	f.deps.Logger.Info(fmt.Sprintf("Fetch status: %d - Successfully fetched %d users", status, len(users)), map[string]interface{}{
		"status": status,
		"count":  len(users),
	})

	return users, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]domain.User, int, error) {
	if f.deps.HTTPClient == nil {
		return nil, 0, &coreerrors.FetchFailedError{
			URL:   f.cfg.UsersURL,
			Cause: errors.New("HTTP client not configured"),
		}
	}

	resp, err := f.deps.HTTPClient.Get(ctx, f.cfg.UsersURL)
	if err != nil {
		return nil, 0, &coreerrors.FetchFailedError{URL: f.cfg.UsersURL, Cause: err}
	}
	defer resp.Body().Close()

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, status, &coreerrors.FetchFailedError{
			URL:   f.cfg.UsersURL,
			Cause: fmt.Errorf("request failed with status code %d", status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), f.maxBodyBytes+1))
	if err != nil {
		return nil, status, &coreerrors.FetchFailedError{URL: f.cfg.UsersURL, Cause: err}
	}
	if int64(len(body)) > f.maxBodyBytes {
		return nil, status, &coreerrors.FetchFailedError{
			URL:   f.cfg.UsersURL,
			Cause: fmt.Errorf("response body exceeds %d bytes", f.maxBodyBytes),
		}
	}

	users, err := decodeUsers(body)
	if err != nil {
		return nil, status, err
	}

	return users, status, nil
}

// decodeUsers accepts only a JSON array of objects. null, objects and scalars
// are rejected before decoding since json.Unmarshal would turn null into a nil
// slice without complaint. Fields of the wrong type inside an object are not
// a response-shape problem: domain.User keeps them for Validate.
func decodeUsers(body []byte) ([]domain.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &coreerrors.MalformedResponseError{Reason: coreerrors.ReasonExpectedArray}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &coreerrors.MalformedResponseError{Reason: coreerrors.ReasonExpectedArray, Cause: err}
	}

	users := make([]domain.User, 0, len(raw))
	for i, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, &coreerrors.MalformedResponseError{
				Reason: coreerrors.ReasonExpectedArray,
				Cause:  fmt.Errorf("element %d is not an object", i),
			}
		}

		var u domain.User
		if err := json.Unmarshal(item, &u); err != nil {
			return nil, &coreerrors.MalformedResponseError{
				Reason: coreerrors.ReasonExpectedArray,
				Cause:  fmt.Errorf("element %d: %w", i, err),
			}
		}
		users = append(users, u)
	}

	return users, nil
}

// failureMessage returns the cause text the way it is reported to operators:
// the transport's own message for fetch failures, the reason otherwise.
func failureMessage(err error) string {
	var fetchErr *coreerrors.FetchFailedError
	if errors.As(err, &fetchErr) && fetchErr.Cause != nil {
		return fetchErr.Cause.Error()
	}
	var respErr *coreerrors.MalformedResponseError
	if errors.As(err, &respErr) {
		return respErr.Reason
	}
	return err.Error()
}
