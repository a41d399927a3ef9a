package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

var errNoHistory = errors.New("--history-db is required")

// runHistory lists recorded generate runs.
func runHistory(args []string, stdout, stderr io.Writer) error {
	cfg, _, err := loadConfig("history", args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel, stderr)

	if cfg.HistoryDB == "" {
		return errNoHistory
	}

	store, err := openHistory(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(stdout, "No runs recorded")
		return nil
	}

	fmt.Fprintf(stdout, "%-36s %-19s %10s %20s %9s  %s\n", "RUN ID", "STARTED", "RECORDS", "SEED", "SIZE", "OUTPUT")
	fmt.Fprintln(stdout, "─────────────────────────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		fmt.Fprintf(stdout, "%-36s %-19s %10s %20d %9s  %s\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			humanize.Comma(int64(run.Count)),
			run.Seed,
			humanize.Bytes(uint64(run.SizeBytes)),
			run.Output)
	}

	return nil
}
