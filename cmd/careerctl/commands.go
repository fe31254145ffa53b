// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/mycareerassist/careerctl/internal/config"
	"github.com/mycareerassist/careerctl/internal/doctor"
	"github.com/mycareerassist/careerctl/internal/lint"
	"github.com/mycareerassist/careerctl/internal/logger"
	"github.com/mycareerassist/careerctl/internal/runbook"
	"github.com/mycareerassist/careerctl/internal/scaffold"
	"github.com/mycareerassist/careerctl/internal/theme"
	"github.com/mycareerassist/careerctl/internal/tui"
)

// errChecksFailed signals a clean "checks did not pass" exit, as opposed to
// a tool failure.
var errChecksFailed = errors.New("checks failed")

const (
	defaultSecretsPath = ".streamlit/secrets.toml"
	defaultThemePath   = ".streamlit/config.toml"
	defaultRunbookPath = "docs/DEPLOYMENT.md"
)

func runInit(args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	out := fs.String("o", defaultSecretsPath, "Output secrets file path")
	force := fs.Bool("force", false, "Overwrite an existing secrets file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	defaults, err := config.Load(fl)
	if err != nil {
		return err
	}

	cfg, err := tui.RunWizard(defaults)
	if err != nil {
		return err
	}

	if err := scaffold.New(".", *force, log).WriteSecrets(*out, cfg); err != nil {
		return err
	}

	fmt.Printf("secrets written to %s\n", *out)
	return nil
}

func runScaffold(args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet("scaffold", flag.ExitOnError)
	dir := fs.String("dir", ".", "Target directory")
	force := fs.Bool("force", false, "Overwrite existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return scaffold.New(*dir, *force, log).WriteAll()
}

func runCheck(args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	themePath := fs.String("theme", defaultThemePath, "Theme file path")
	runbookPath := fs.String("runbook", defaultRunbookPath, "Runbook document path")
	strict := fs.Bool("strict", false, "Require every credential to be present")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report := &lint.Report{}

	// Lint before loading: a file with broken values must produce findings
	// naming the file and line, not just a load failure.
	if secretsPath := resolveSecretsPath(fl); secretsPath != "" {
		secretsReport, err := lint.Secrets(secretsPath)
		if err != nil {
			return err
		}
		report.Merge(secretsReport)
	}

	if fileExists(*themePath) {
		themeReport, err := lint.Theme(*themePath)
		if err != nil {
			return err
		}
		report.Merge(themeReport)
	}

	if fileExists(*runbookPath) {
		rb, err := runbook.Load(*runbookPath)
		if err != nil {
			return err
		}
		report.Merge(rb.Check(runbook.DefaultManifest))
	}

	for _, finding := range report.Findings {
		fmt.Println(finding)
	}

	failed := report.HasErrors()

	cfg, err := config.Load(fl)
	if err != nil {
		// The findings above already name the broken file; the load error
		// adds what the merged config rejects beyond it.
		fmt.Printf("load: %v\n", err)
		failed = true
		cfg = nil
	}

	if *strict && cfg != nil {
		if err := cfg.ValidateComplete(); err != nil {
			fmt.Printf("strict: %v\n", err)
			failed = true
		}
	}

	if failed {
		return errChecksFailed
	}

	log.Info().Int("findings", len(report.Findings)).Msg("checks passed")
	return nil
}

func runDoctor(args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	connect := fs.Bool("connect", false, "Also dial and ping the database")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fl)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d := doctor.New(log,
		&doctor.SecretsCheck{Config: cfg},
		&doctor.DatabaseCheck{URL: cfg.Storage.DatabaseURL, Connect: *connect},
		doctor.NewJobAPICheck(cfg.Search.ArbeitsagenturURL),
	)

	results, healthy := d.Run(ctx)
	for _, result := range results {
		fmt.Printf("%-10s %-5s %s\n", result.Name, result.Status, result.Detail)
	}

	if !healthy {
		return errChecksFailed
	}
	return nil
}

func runTheme(args []string) error {
	fs := flag.NewFlagSet("theme", flag.ExitOnError)
	themePath := fs.String("f", defaultThemePath, "Theme file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t := theme.Default()
	if fileExists(*themePath) {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			return err
		}
		t = loaded
	} else {
		fmt.Printf("%s not found, previewing defaults\n\n", *themePath)
	}

	fmt.Print(t.Preview())
	return nil
}

func runCopy(args []string, log *logger.Logger) error {
	fs := flag.NewFlagSet("copy", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: careerctl copy [flags] KEY, one of %v", config.Keys())
	}
	key := fs.Arg(0)

	cfg, err := config.Load(fl)
	if err != nil {
		return err
	}

	value, ok := cfg.Value(key)
	if !ok {
		return fmt.Errorf("%w: %s, known keys: %v", config.ErrUnknownKey, key, config.Keys())
	}
	if value == "" {
		return fmt.Errorf("%s is not set", key)
	}

	if err := clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("error writing to clipboard: %w", err)
	}

	// Value itself never goes to the log.
	log.Info().Str("key", key).Msg("copied to clipboard")
	fmt.Printf("%s copied to clipboard\n", key)
	return nil
}

// resolveSecretsPath finds the secrets file to lint the same way the loader
// will: flag, then environment, then the default location if it exists.
func resolveSecretsPath(fl *config.Flags) string {
	if path := fl.Config().SecretsFilePath; path != "" {
		return path
	}
	if path := os.Getenv("SECRETS_FILE"); path != "" {
		return path
	}
	if fileExists(defaultSecretsPath) {
		return defaultSecretsPath
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
