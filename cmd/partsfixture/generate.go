package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"pkg.jsn.cam/partsfixture/internal/config"
	"pkg.jsn.cam/partsfixture/internal/csvfile"
	"pkg.jsn.cam/partsfixture/internal/history"
	"pkg.jsn.cam/partsfixture/internal/progress"
	"pkg.jsn.cam/partsfixture/internal/report"
	"pkg.jsn.cam/partsfixture/pkg/fixture"
)

func loadConfig(name string, args []string) (*config.Config, *pflag.FlagSet, error) {
	flags := config.Flags(name)
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, nil, err
	}

	return cfg, flags, nil
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	cfg, _, err := loadConfig("generate", args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel, stderr)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	rec := history.NewRun(seed, cfg.Count, cfg.Output)
	logger := log.With().Str("component", "generator").Str("run", rec.ID).Logger()

	fmt.Fprintln(stdout, "=== Product Fixture Generator ===")
	fmt.Fprintln(stdout, "Synthetic catalog data for client-side performance testing")
	fmt.Fprintln(stdout)

	var sink fixture.Progress = progress.NewLog(logger)
	if cfg.ProgressBar && cfg.Count > 0 {
		sink = progress.NewBar(stderr, cfg.Count)
	}

	logger.Info().Int("count", cfg.Count).Uint64("seed", seed).Msg("generating records")

	gen := fixture.NewGenerator(fixture.NewSynthesizer(seed), sink)
	gen.Every = cfg.ProgressEvery
	products := gen.Generate(cfg.Count)

	logger.Info().Str("output", cfg.Output).Msg("saving records")
	size, err := csvfile.Write(products, cfg.Output)
	if err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	logger.Info().
		Int64("bytes", size).
		Msgf("saved %s rows, %s", humanize.Comma(int64(len(products))), humanize.Bytes(uint64(size)))

	fmt.Fprintln(stdout)
	if err := report.Print(stdout, products, cfg.Top); err != nil {
		return err
	}

	rec.SizeBytes = size
	rec.Duration = time.Since(rec.StartedAt)
	if cfg.HistoryDB != "" {
		if err := recordRun(cfg.HistoryDB, rec); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "File:    %s\n", cfg.Output)
	fmt.Fprintf(stdout, "Records: %s\n", humanize.Comma(int64(len(products))))
	fmt.Fprintf(stdout, "Seed:    %d\n", seed)

	return nil
}

func openHistory(path string) (history.Store, error) {
	store, err := history.NewBoltStore(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	return store, nil
}

func recordRun(path string, run history.Run) error {
	store, err := openHistory(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	log.Debug().Str("component", "history").Str("run", run.ID).Msg("run recorded")

	return nil
}
