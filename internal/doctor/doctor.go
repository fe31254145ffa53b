// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

// Package doctor runs preflight probes against the configured external
// dependencies before a deployment: the database connection string, the
// public job search endpoint, and the completeness of the secrets file.
// It defines the Check interface and a Doctor aggregate that runs multiple
// checks in a unified way.
package doctor

import (
	"context"
	"time"

	"github.com/mycareerassist/careerctl/internal/logger"
)

// Status is the outcome of a single check.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "ok"
	// StatusWarn means the check passed with reservations.
	StatusWarn Status = "warn"
	// StatusFail means the check failed.
	StatusFail Status = "fail"
)

// Result is the outcome of one check run.
type Result struct {
	// Name is the check's name.
	Name string `json:"name"`

	// Status is the check outcome.
	Status Status `json:"status"`

	// Detail is a human-readable explanation of the outcome.
	Detail string `json:"detail"`
}

// Check is the interface implemented by every preflight probe. Run must
// honor ctx cancellation and never panic.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// checkTimeout bounds each individual probe.
const checkTimeout = 10 * time.Second

// Doctor runs a fixed sequence of checks and aggregates their results.
type Doctor struct {
	checks []Check
	logger *logger.Logger
}

// New returns a Doctor over the given checks.
func New(log *logger.Logger, checks ...Check) *Doctor {
	return &Doctor{checks: checks, logger: log}
}

// Run executes every check in order, each under its own timeout, and
// returns all results. The second return is false if any check failed.
func (d *Doctor) Run(ctx context.Context) ([]Result, bool) {
	results := make([]Result, 0, len(d.checks))
	healthy := true

	for _, check := range d.checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		result := check.Run(checkCtx)
		cancel()

		d.logger.Info().
			Str("check", result.Name).
			Str("status", string(result.Status)).
			Str("detail", result.Detail).
			Msg("preflight check")

		if result.Status == StatusFail {
			healthy = false
		}
		results = append(results, result)
	}

	return results, healthy
}
