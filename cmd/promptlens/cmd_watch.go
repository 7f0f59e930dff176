package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptlens/internal/logging"
	"promptlens/internal/promptset"
	"promptlens/internal/report"
	"promptlens/internal/watch"
)

// watchCmd recompares prompt sets whenever their files change.
var watchCmd = &cobra.Command{
	Use:   "watch [set.yaml...]",
	Short: "Recompare prompt sets whenever their files change",
	Long: `Watches one or more prompt-set YAML files and reprints the comparison
report after every change. Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryWatch)

	recompare := func(path string) {
		set, err := promptset.Load(path)
		if err != nil {
			log.Warn("skipping unreadable prompt set", zap.String("path", path), zap.Error(err))
			cmd.PrintErrf("%s: %v\n", path, err)
			return
		}
		if len(set.Variants) == 0 {
			return
		}
		r := report.Build(set.Name, set.Variants)
		cmd.Printf("\n=== %s ===\n", path)
		printReport(cmd, r)
	}

	w, err := watch.New(args, cfg.Watch.DebounceDuration(), recompare)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %d file(s); press Ctrl-C to stop.\n", len(args))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
