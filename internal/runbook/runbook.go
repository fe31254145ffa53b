// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

// Package runbook parses the deployment runbook document and checks that
// its step sequence is internally consistent: directories are created
// before they are entered, files exist before they are used, and optional
// tooling steps match the repository they describe.
package runbook

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// StepKind distinguishes shell command steps from manual UI actions.
type StepKind string

const (
	// KindCommand is a shell command inside a fenced code block.
	KindCommand StepKind = "command"
	// KindManual is a numbered instruction performed by hand (e.g. in a
	// hosting provider's web UI).
	KindManual StepKind = "manual"
)

// Step is one ordered entry of a deployment runbook.
type Step struct {
	// Kind states whether the step is a command or a manual action.
	Kind StepKind

	// Line is the 1-based line in the runbook document.
	Line int

	// Text is the command or instruction text, trimmed.
	Text string
}

// Runbook is a parsed deployment runbook.
type Runbook struct {
	// Path is the document the runbook was parsed from.
	Path string

	// Steps holds all steps in document order.
	Steps []Step
}

var numberedItemPattern = regexp.MustCompile(`^\s*\d+[.)]\s+(.*)$`)

// Load reads and parses the runbook document at path.
func Load(path string) (*Runbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening runbook: %w", err)
	}
	defer file.Close()

	rb := &Runbook{Path: path}

	scanner := bufio.NewScanner(file)
	line := 0
	inFence := false
	fenceIsShell := false
	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)

		if strings.HasPrefix(trimmed, "```") {
			if !inFence {
				lang := strings.TrimPrefix(trimmed, "```")
				fenceIsShell = lang == "" || lang == "bash" || lang == "sh" || lang == "shell" || lang == "console"
			}
			inFence = !inFence
			continue
		}

		if inFence {
			if !fenceIsShell || trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			rb.Steps = append(rb.Steps, Step{
				Kind: KindCommand,
				Line: line,
				Text: strings.TrimPrefix(trimmed, "$ "),
			})
			continue
		}

		if m := numberedItemPattern.FindStringSubmatch(text); m != nil {
			rb.Steps = append(rb.Steps, Step{
				Kind: KindManual,
				Line: line,
				Text: strings.TrimSpace(m[1]),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading runbook: %w", err)
	}

	return rb, nil
}

// Commands returns only the shell command steps, each possibly expanded
// from `&&`/`;` chains into individual commands in execution order.
func (rb *Runbook) Commands() []Step {
	var out []Step
	for _, step := range rb.Steps {
		if step.Kind != KindCommand {
			continue
		}
		for _, part := range splitChained(step.Text) {
			out = append(out, Step{Kind: KindCommand, Line: step.Line, Text: part})
		}
	}
	return out
}

func splitChained(command string) []string {
	var parts []string
	for _, chunk := range strings.Split(command, "&&") {
		for _, sub := range strings.Split(chunk, ";") {
			if s := strings.TrimSpace(sub); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return parts
}
