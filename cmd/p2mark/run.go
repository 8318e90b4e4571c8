package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"p2mark/internal/batch"
	"p2mark/internal/guid"
	"p2mark/internal/journal"
	"p2mark/internal/logging"
	"p2mark/internal/xmp"
)

func runMarkers(cmd *cobra.Command, ctx *commandContext, contentsPath string, mode batch.Mode, showMarkers bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts := []batch.Option{batch.WithLogger(logger)}
	if cfg.Journal.Enabled {
		store, err := journal.Open(cmd.Context(), cfg.Journal.Path)
		if err != nil {
			logging.WarnWithContext(logger, "run journal unavailable", "journal_open_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "this run is not recorded in the history"),
				logging.String(logging.FieldErrorHint, "check journal.path or disable the journal"))
		} else {
			defer store.Close()
			opts = append(opts, batch.WithJournal(store))
		}
	}

	synth := xmp.NewSynthesizer(guid.UUIDGenerator{}, logger)
	runner, err := batch.NewRunner(cfg, synth, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "p2mark running in %s mode.\n\n", mode)

	reporter := newConsoleReporter(out, cmd.ErrOrStderr(), mode, cfg.Scan.ClipSizeLimitMB, showMarkers)
	report, err := runner.Run(cmd.Context(), contentsPath, mode, reporter)
	if err != nil {
		return err
	}
	if report.Stats.ClipsFound == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No clips found.")
		return nil
	}
	reporter.summary(report.Stats)
	return nil
}
