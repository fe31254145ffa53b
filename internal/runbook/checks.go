package runbook

import (
	"fmt"
	"path"
	"strings"

	"github.com/mycareerassist/careerctl/internal/lint"
)

// DefaultManifest lists the files a fresh MyCareerAssist checkout is
// documented to contain, so runbook steps may reference them without
// creating them first.
var DefaultManifest = []string{
	"requirements.txt",
	"MyCareerAssist.py",
	".streamlit/secrets.toml",
	".streamlit/config.toml",
}

// testTools are commands whose documented use is conditioned on a tests
// directory existing.
var testTools = []string{"pytest", "flake8", "black", "ruff"}

// Check verifies the runbook's internal consistency against a repository
// manifest: every directory entered must have been created by an earlier
// step, every file used must be created earlier or listed in the manifest,
// and test tooling is flagged when nothing provides a tests directory.
func (rb *Runbook) Check(manifest []string) *lint.Report {
	report := &lint.Report{}

	created := map[string]bool{}
	known := map[string]bool{}
	for _, f := range manifest {
		known[f] = true
		// A manifest file implies its directory.
		if dir := path.Dir(f); dir != "." {
			created[dir] = true
		}
	}

	hasTestsDir := known["tests"]

	for _, step := range rb.Commands() {
		argv := strings.Fields(step.Text)
		if len(argv) == 0 {
			continue
		}

		switch argv[0] {
		case "git":
			if dir, ok := cloneTarget(argv); ok {
				created[dir] = true
			}
		case "mkdir":
			for _, arg := range argv[1:] {
				if !strings.HasPrefix(arg, "-") {
					created[arg] = true
					if arg == "tests" {
						hasTestsDir = true
					}
				}
			}
		case "python", "python3":
			if dir, ok := venvTarget(argv); ok {
				created[dir] = true
			}
		case "cd":
			if len(argv) < 2 {
				continue
			}
			target := argv[1]
			if target == "." || target == ".." || strings.HasPrefix(target, "/") || strings.HasPrefix(target, "~") {
				continue
			}
			if !created[target] {
				report.Findings = append(report.Findings, lint.Finding{
					Severity: lint.SeverityError,
					File:     rb.Path,
					Line:     step.Line,
					Message:  fmt.Sprintf("cd %s: no earlier step creates directory %q", target, target),
				})
			}
		case "cp", "mv":
			if len(argv) >= 3 {
				src := argv[len(argv)-2]
				checkFileRef(report, rb.Path, step.Line, src, known, created)
				known[argv[len(argv)-1]] = true
			}
		case "touch":
			for _, arg := range argv[1:] {
				known[arg] = true
			}
		case "pip", "pip3":
			if f, ok := requirementsFile(argv); ok {
				checkFileRef(report, rb.Path, step.Line, f, known, created)
			}
		case "streamlit":
			if len(argv) >= 3 && argv[1] == "run" {
				checkFileRef(report, rb.Path, step.Line, argv[2], known, created)
			}
		}

		if tool := testTool(argv[0]); tool != "" && !hasTestsDir {
			report.Findings = append(report.Findings, lint.Finding{
				Severity: lint.SeverityInfo,
				File:     rb.Path,
				Line:     step.Line,
				Message:  fmt.Sprintf("%s step assumes a tests directory, but no step or manifest entry provides one", tool),
			})
		}
	}

	return report
}

// cloneTarget returns the directory a `git clone` command produces.
func cloneTarget(argv []string) (string, bool) {
	if len(argv) < 3 || argv[1] != "clone" {
		return "", false
	}

	args := make([]string, 0, len(argv)-2)
	for _, arg := range argv[2:] {
		if !strings.HasPrefix(arg, "-") {
			args = append(args, arg)
		}
	}

	switch len(args) {
	case 0:
		return "", false
	case 1:
		base := path.Base(args[0])
		return strings.TrimSuffix(base, ".git"), true
	default:
		return args[len(args)-1], true
	}
}

// venvTarget returns the directory a `python -m venv` command creates.
func venvTarget(argv []string) (string, bool) {
	for i := 0; i+2 < len(argv); i++ {
		if argv[i] == "-m" && argv[i+1] == "venv" {
			return argv[i+2], true
		}
	}
	return "", false
}

// requirementsFile returns the file passed to `pip install -r`.
func requirementsFile(argv []string) (string, bool) {
	for i, arg := range argv {
		if (arg == "-r" || arg == "--requirement") && i+1 < len(argv) {
			return argv[i+1], true
		}
	}
	return "", false
}

func testTool(command string) string {
	for _, tool := range testTools {
		if command == tool {
			return tool
		}
	}
	return ""
}

func checkFileRef(report *lint.Report, file string, line int, ref string, known, created map[string]bool) {
	if known[ref] {
		return
	}
	// A file inside a directory an earlier step created is assumed to come
	// with that directory's contents (e.g. a fresh clone).
	for dir := path.Dir(ref); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if created[dir] {
			return
		}
	}
	report.Findings = append(report.Findings, lint.Finding{
		Severity: lint.SeverityWarning,
		File:     file,
		Line:     line,
		Message:  fmt.Sprintf("%s is used before any step creates or declares it", ref),
	})
}
