// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyCareerAssist Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/mycareerassist/careerctl/internal/lint"
	"github.com/mycareerassist/careerctl/internal/logger"
)

// healthz answers liveness probes with the build metadata.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.buildInfo.BuildVersion(),
		"commit":  h.buildInfo.BuildCommit(),
	})
}

// getConfig serves the effective configuration with every credential field
// redacted. The unredacted config never leaves the process.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.cfg.Redacted())
}

// getTheme serves the loaded theme configuration.
func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.theme)
}

// getLint runs the file lint checks and serves the aggregated report.
func (h *Handler) getLint(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report := &lint.Report{}

	if h.secretsPath != "" {
		secretsReport, err := lint.Secrets(h.secretsPath)
		if err != nil {
			log.Error().Err(err).Str("file", h.secretsPath).Msg("secrets lint failed")
			http.Error(w, "secrets file could not be checked", http.StatusUnprocessableEntity)
			return
		}
		report.Merge(secretsReport)
	}

	if h.themePath != "" {
		themeReport, err := lint.Theme(h.themePath)
		if err != nil {
			log.Error().Err(err).Str("file", h.themePath).Msg("theme lint failed")
			http.Error(w, "theme file could not be checked", http.StatusUnprocessableEntity)
			return
		}
		report.Merge(themeReport)
	}

	h.writeJSON(w, r, http.StatusOK, report)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}
