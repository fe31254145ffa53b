// Package http exposes the configd inspection API: the redacted effective
// configuration, the loaded theme, lint results for the configured files,
// and a liveness endpoint.
package http

import (
	"github.com/mycareerassist/careerctl/internal/config"
	"github.com/mycareerassist/careerctl/internal/logger"
	"github.com/mycareerassist/careerctl/internal/theme"
	"github.com/mycareerassist/careerctl/models"
)

// Handler serves the configd inspection routes.
type Handler struct {
	cfg       *config.Config
	theme     *theme.Theme
	buildInfo models.AppBuildInfo

	// secretsPath and themePath locate the files the lint endpoint checks.
	secretsPath string
	themePath   string

	logger *logger.Logger
}

// NewHandler constructs a Handler over the loaded configuration and theme.
// secretsPath and themePath may be empty when the deployment supplies those
// values through the environment only.
func NewHandler(cfg *config.Config, t *theme.Theme, buildInfo models.AppBuildInfo, secretsPath, themePath string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		cfg:         cfg,
		theme:       t,
		buildInfo:   buildInfo,
		secretsPath: secretsPath,
		themePath:   themePath,
		logger:      logger,
	}
}
