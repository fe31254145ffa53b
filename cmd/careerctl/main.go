// Command careerctl manages the MyCareerAssist deployment configuration:
// scaffolding the template files, validating and linting them, probing the
// configured external services, and walking an operator through first-time
// setup.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mycareerassist/careerctl/internal/logger"
	"github.com/mycareerassist/careerctl/internal/tui"
	"github.com/mycareerassist/careerctl/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: careerctl <command> [flags]

Commands:
  init      interactive setup wizard, writes a secrets file
  scaffold  write the template configuration files
  check     validate and lint the configuration files
  doctor    probe the configured external services
  theme     validate the theme file and preview its colors
  copy      copy a secret value to the clipboard
  version   print build information

Run "careerctl <command> -h" for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	log := logger.NewLogger("careerctl")
	if command == "init" {
		// The wizard owns the terminal; logs go to a file instead.
		log = logger.NewWizardLogger("careerctl")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var err error
	switch command {
	case "init":
		err = runInit(args, log)
	case "scaffold":
		err = runScaffold(args, log)
	case "check":
		err = runCheck(args, log)
	case "doctor":
		err = runDoctor(args, log)
	case "theme":
		err = runTheme(args)
	case "copy":
		err = runCopy(args, log)
	case "version":
		printBuildInfo(buildInfo)
	case "-h", "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "careerctl: unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			fmt.Println("setup cancelled")
			return
		}
		if errors.Is(err, errChecksFailed) {
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg(command + " failed")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
