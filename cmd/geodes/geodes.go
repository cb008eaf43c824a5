// Command geodes prints the most geodes one blueprint of the robot factory
// can crack within the time horizon.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-bnb/puzzlesolver/internal/config"
	"github.com/go-bnb/puzzlesolver/internal/geode"
	"github.com/go-bnb/puzzlesolver/internal/logging"
	"github.com/spf13/cobra"
)

var errUnknownBlueprint = errors.New("unknown blueprint")

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		cfg        = config.Default()
	)

	cmd := &cobra.Command{
		Use:          "geodes",
		Short:        "Find the build order cracking the most geodes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("input") {
				loaded.Geode.Input = cfg.Geode.Input
			}
			if flags.Changed("minutes") {
				loaded.Geode.Minutes = cfg.Geode.Minutes
			}
			if flags.Changed("blueprint") {
				loaded.Geode.Blueprint = cfg.Geode.Blueprint
			}
			if flags.Changed("workers") {
				loaded.Geode.Workers = cfg.Geode.Workers
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

			loaded.Log.Service = "geodes"
			logger, err := logging.New(stderr, loaded.Log)
			if err != nil {
				return err
			}
			return solve(cmd.Context(), loaded.Geode, logger, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&cfg.Geode.Input, "input", "i", cfg.Geode.Input, "blueprint input file")
	flags.IntVarP(&cfg.Geode.Minutes, "minutes", "m", cfg.Geode.Minutes, "time horizon in minutes")
	flags.IntVarP(&cfg.Geode.Blueprint, "blueprint", "b", cfg.Geode.Blueprint, "blueprint id (0: first blueprint)")
	flags.IntVarP(&cfg.Geode.Workers, "workers", "w", cfg.Geode.Workers, "goroutines exploring the first decisions (<= 0: one per CPU)")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format (text, json)")
	return cmd
}

func selectBlueprint(bps []geode.Blueprint, id int) (geode.Blueprint, error) {
	if id == 0 {
		return bps[0], nil
	}
	for _, bp := range bps {
		if bp.ID == id {
			return bp, nil
		}
	}
	return geode.Blueprint{}, fmt.Errorf("%w %d", errUnknownBlueprint, id)
}

func solve(ctx context.Context, cfg config.Geode, logger *slog.Logger, out io.Writer) error {
	file, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer file.Close()

	bps, err := geode.ParseBlueprints(file)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	bp, err := selectBlueprint(bps, cfg.Blueprint)
	if err != nil {
		return err
	}

	o := geode.New(bp,
		geode.WithMinutes(cfg.Minutes),
		geode.WithWorkers(cfg.Workers),
		geode.WithLogger(logger),
	)
	result, err := o.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("optimization finished", "blueprint", bp.ID, "geodes", result.Geodes, "stats", result.Stats)

	_, err = fmt.Fprintf(out, "Best geodes: %d\nBest state: %+v\n", result.Geodes, result.Best)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
