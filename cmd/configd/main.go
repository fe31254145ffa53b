// Command configd serves the MyCareerAssist configuration inspection API on
// a local address: the redacted effective configuration, the theme, lint
// results, and a liveness endpoint. It is an operator's debugging aid
// during deployments, not part of the deployed application.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mycareerassist/careerctl/internal/config"
	handler "github.com/mycareerassist/careerctl/internal/handler/http"
	"github.com/mycareerassist/careerctl/internal/logger"
	"github.com/mycareerassist/careerctl/internal/server"
	"github.com/mycareerassist/careerctl/internal/theme"
	"github.com/mycareerassist/careerctl/models"
)

const defaultAddress = "localhost:8990"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("configd")

	fs := flag.NewFlagSet("configd", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	address := fs.String("a", "", "Listen address host:port")
	themePath := fs.String("theme", ".streamlit/config.toml", "Theme file path")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}

	cfg, err := config.Load(fl)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	t := theme.Default()
	if _, err := os.Stat(*themePath); err == nil {
		if t, err = theme.Load(*themePath); err != nil {
			log.Fatal().Err(err).Msg("error loading theme")
		}
	}

	listenAddress := *address
	if listenAddress == "" {
		listenAddress = os.Getenv("CONFIGD_ADDRESS")
	}
	if listenAddress == "" {
		listenAddress = defaultAddress
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	h := handler.NewHandler(cfg, t, buildInfo, cfg.SecretsFilePath, *themePath, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewHTTPServer(listenAddress, h.Init(), log)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("configd server error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
