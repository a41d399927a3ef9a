package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"pkg.jsn.cam/partsfixture/internal/csvfile"
	"pkg.jsn.cam/partsfixture/internal/report"
)

var errMissingFile = errors.New("fixture file path is required")

// runStats prints the report for an existing fixture file.
func runStats(args []string, stdout, stderr io.Writer) error {
	cfg, flags, err := loadConfig("stats", args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel, stderr)

	if flags.NArg() != 1 {
		return errMissingFile
	}
	path := flags.Arg(0)

	products, err := csvfile.Read(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.Info().Str("component", "stats").Str("file", path).Int("records", len(products)).Msg("loaded fixture file")

	return report.Print(stdout, products, cfg.Top)
}
