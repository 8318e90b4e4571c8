package main

import (
	"errors"

	"github.com/spf13/cobra"

	"p2mark/internal/batch"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0"

func newRootCommand() *cobra.Command {
	var configFlag string
	var listFlag bool
	var markersFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "p2mark [flags] CONTENTS_PATH",
		Short:         "Convert P2 camera markers so they display in Adobe Premiere Pro",
		Long:          "p2mark reads the text memos a P2 camera stores in CONTENTS/CLIP/*.XML and writes them\nas markers into an XMP sidecar next to each clip.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing CONTENTS_PATH argument\nType -h or --help to get usage info")
			}
			mode := batch.ModeWrite
			if listFlag {
				mode = batch.ModeList
			}
			if markersFlag && mode != batch.ModeList {
				return errors.New("--markers requires --list")
			}
			defer ctx.close()
			return runMarkers(cmd, ctx, args[0], mode, markersFlag)
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} version: {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List the markers, don't generate XMPs")
	rootCmd.Flags().BoolVar(&markersFlag, "markers", false, "With --list, print every marker of every clip")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
