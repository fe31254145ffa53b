// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

// Package scaffold writes the deployment's template files: the secrets file
// examples, the theme configuration, and the deployment runbook. All
// content is rendered from the typed contracts in the config and theme
// packages, so a scaffolded file can never spell a key differently than
// the loader expects.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mycareerassist/careerctl/internal/config"
	"github.com/mycareerassist/careerctl/internal/logger"
	"github.com/mycareerassist/careerctl/internal/theme"
)

// ErrFileExists indicates a scaffold target that already exists and was not
// forced.
var ErrFileExists = errors.New("file already exists")

// Scaffolder writes template files under a target directory.
type Scaffolder struct {
	dir    string
	force  bool
	logger *logger.Logger
}

// New returns a Scaffolder rooted at dir. When force is false, existing
// files are never overwritten.
func New(dir string, force bool, log *logger.Logger) *Scaffolder {
	return &Scaffolder{dir: dir, force: force, logger: log}
}

// WriteAll writes every template file: .env.example, secrets.toml.example,
// the theme config.toml, and docs/DEPLOYMENT.md.
func (s *Scaffolder) WriteAll() error {
	files := []struct {
		path    string
		content string
	}{
		{".env.example", RenderDotenv(config.Defaults())},
		{filepath.Join(".streamlit", "secrets.toml.example"), RenderSecretsTOML(config.Defaults())},
		{filepath.Join(".streamlit", "config.toml"), RenderThemeTOML(theme.Default())},
		{filepath.Join("docs", "DEPLOYMENT.md"), RenderRunbook()},
	}

	for _, f := range files {
		if err := s.writeFile(f.path, f.content); err != nil {
			return err
		}
	}

	return nil
}

// WriteSecrets writes cfg as a secrets file at path, in dotenv or TOML form
// chosen by extension. A relative path is resolved against the scaffold
// root; an absolute path is used as-is. The setup wizard uses this to
// persist its result.
func (s *Scaffolder) WriteSecrets(path string, cfg *config.Config) error {
	content := RenderDotenv(cfg)
	if filepath.Ext(path) == ".toml" {
		content = RenderSecretsTOML(cfg)
	}
	return s.writeFile(path, content)
}

func (s *Scaffolder) writeFile(rel, content string) error {
	path := rel
	if !filepath.IsAbs(rel) {
		path = filepath.Join(s.dir, rel)
	}

	if !s.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating scaffold directory: %w", err)
	}

	// Secrets templates may end up holding real credentials; keep them
	// owner-readable only.
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("error writing %s: %w", rel, err)
	}

	s.logger.Info().Str("file", path).Msg("scaffolded")
	return nil
}
