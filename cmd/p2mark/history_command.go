package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"p2mark/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently processed clips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return errors.New("the run journal is disabled (journal.enabled = false)")
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			store, err := journal.Open(cmd.Context(), cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}
			fmt.Fprintln(out, historyTable(entries))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}

func historyTable(entries []journal.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		detail := e.Sidecar
		if e.Error != "" {
			detail = e.Error
		}
		rows = append(rows, []string{
			e.RecordedAt.Local().Format("2006-01-02 15:04:05"),
			e.Mode,
			e.ContentsDir,
			e.Clip,
			strconv.Itoa(e.Markers),
			string(e.Outcome),
			detail,
		})
	}
	return renderTable([]string{"Time", "Mode", "Card", "Clip", "Markers", "Outcome", "Detail"}, rows, 4)
}
