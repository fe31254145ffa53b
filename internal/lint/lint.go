// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

// Package lint checks the deployment's configuration files against their
// documented contracts: keys must be spelled exactly as documented, values
// must parse as their stated types, and files must not contradict
// themselves. Findings are reported, never fixed.
package lint

import "fmt"

// Severity classifies a lint finding.
type Severity string

const (
	// SeverityError marks a contract violation the application would
	// reject at startup.
	SeverityError Severity = "error"
	// SeverityWarning marks a likely mistake the application would
	// silently ignore.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks an observation that needs no action.
	SeverityInfo Severity = "info"
)

// Finding is a single lint result tied to a location in a checked file.
type Finding struct {
	// Severity classifies the finding.
	Severity Severity `json:"severity"`

	// File is the path of the checked file.
	File string `json:"file"`

	// Line is the 1-based line of the finding, or 0 when the finding has
	// no meaningful line (e.g. a missing key).
	Line int `json:"line,omitempty"`

	// Key is the configuration key the finding is about, when applicable.
	Key string `json:"key,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// String renders the finding in the familiar file:line tool format.
func (f Finding) String() string {
	loc := f.File
	if f.Line > 0 {
		loc = fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	return fmt.Sprintf("%s: %s: %s", loc, f.Severity, f.Message)
}

// Report aggregates the findings of one lint run.
type Report struct {
	// Findings holds all findings in file order.
	Findings []Finding `json:"findings"`
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Merge appends all findings of other to r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Findings = append(r.Findings, other.Findings...)
}

// HasErrors reports whether the report contains at least one error-severity
// finding.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
