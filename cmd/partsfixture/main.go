// Command partsfixture generates CSV fixture data of automotive part products
// for client-side performance testing of the catalog site.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pkg.jsn.cam/partsfixture/internal/config"
)

var errUnknownCommand = errors.New("unknown command")

const usage = `usage:
  partsfixture [generate] [--count N] [--output PATH] [--seed N] [flags]
  partsfixture stats [--top N] FILE.csv
  partsfixture history --history-db PATH`

func main() {
	setupLogger(config.DefaultLogLevel, os.Stderr)
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs a command and maps its outcome to an exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	if err := run(args, stdout, stderr); err != nil {
		log.Error().Err(err).Msg("partsfixture failed")
		return 1
	}
	return 0
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "generate":
		return runGenerate(args, stdout, stderr)
	case "stats":
		return runStats(args, stdout, stderr)
	case "history":
		return runHistory(args, stdout, stderr)
	case "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		fmt.Fprintln(stderr, usage)
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

func setupLogger(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}
