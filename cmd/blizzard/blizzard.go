// Command blizzard prints the fewest minutes needed to cross a valley of
// moving blizzards from the top opening to the bottom opening.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-bnb/puzzlesolver/internal/config"
	"github.com/go-bnb/puzzlesolver/internal/logging"
	"github.com/go-bnb/puzzlesolver/internal/valley"
	"github.com/spf13/cobra"
)

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		cfg        = config.Default()
		noMemo     bool
	)

	cmd := &cobra.Command{
		Use:          "blizzard",
		Short:        "Find the fastest way through a valley of blizzards",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("input") {
				loaded.Blizzard.Input = cfg.Blizzard.Input
			}
			if flags.Changed("max-minutes") {
				loaded.Blizzard.MaxMinutes = cfg.Blizzard.MaxMinutes
			}
			if flags.Changed("workers") {
				loaded.Blizzard.Workers = cfg.Blizzard.Workers
			}
			if flags.Changed("trace") {
				loaded.Blizzard.Trace = cfg.Blizzard.Trace
			}
			if noMemo {
				loaded.Blizzard.Memoize = false
			}
			if flags.Changed("log-level") {
				loaded.Log.Level = cfg.Log.Level
			}
			if flags.Changed("log-format") {
				loaded.Log.Format = cfg.Log.Format
			}
			if err := loaded.Validate(); err != nil {
				return err
			}

			loaded.Log.Service = "blizzard"
			logger, err := logging.New(stderr, loaded.Log)
			if err != nil {
				return err
			}
			return solve(cmd.Context(), loaded.Blizzard, logger, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&cfg.Blizzard.Input, "input", "i", cfg.Blizzard.Input, "valley input file")
	flags.IntVar(&cfg.Blizzard.MaxMinutes, "max-minutes", cfg.Blizzard.MaxMinutes, "initial best time; only faster routes are reported")
	flags.IntVarP(&cfg.Blizzard.Workers, "workers", "w", cfg.Blizzard.Workers, "goroutines exploring the first moves (<= 0: one per CPU)")
	flags.BoolVar(&noMemo, "no-memo", false, "disable the visited cache")
	flags.BoolVar(&cfg.Blizzard.Trace, "trace", cfg.Blizzard.Trace, "print the valley for every minute of the best route")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format (text, json)")
	return cmd
}

func solve(ctx context.Context, cfg config.Blizzard, logger *slog.Logger, out io.Writer) error {
	file, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer file.Close()

	field, err := valley.ParseField(file)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	s := valley.New(field,
		valley.WithMaxMinutes(cfg.MaxMinutes),
		valley.WithMemoize(cfg.Memoize),
		valley.WithWorkers(cfg.Workers),
		valley.WithLogger(logger),
	)
	result, err := s.Search(ctx)
	if err != nil {
		return err
	}
	logger.Info("search finished", "minutes", result.Minutes, "found", result.Found, "stats", result.Stats)

	if !result.Found {
		logger.Warn("no route faster than the initial best time", "max_minutes", cfg.MaxMinutes)
	} else if cfg.Trace {
		if err := trace(out, field, s.Forecast(), result.Path); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(out, "Best state minutes: %d\n", result.Minutes)
	return err
}

func trace(w io.Writer, field *valley.Field, fc *valley.Forecast, path []valley.Position) error {
	for minute, p := range path {
		if _, err := fmt.Fprintf(w, "Minute %d:\n", minute); err != nil {
			return err
		}
		state := valley.State{Minute: minute, Blizzards: fc.Blizzards(minute), Expedition: p}
		if err := valley.Render(w, field, state); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
