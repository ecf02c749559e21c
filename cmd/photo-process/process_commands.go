package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gbagnoli/photo-process/internal/workflow"
)

func newOrganizeCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "organize [dirs...]",
		Short: "Move images into per-day directories named after their capture date",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Organize(cmd.Context(), cctx.toolset, cctx.cfg, args)
		},
	}
}

func newProcessCommand(cctx *commandContext) *cobra.Command {
	var force bool
	var organize bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the full import pipeline over the images directory",
		Long: "Detect recorded timezones, shift images back to UTC, optionally organize\n" +
			"them into per-day directories and download matching activity tracks,\n" +
			"geotag, stamp the configured timezone, and rename by capture date.\n\n" +
			"Without --force the pipeline only reports what it would do.",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := cctx.toolset
			if !force && !cctx.cfg.DryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry-run (pass --force to apply changes)")
				dry, err := cctx.dryRunToolset(cmd)
				if err != nil {
					return err
				}
				defer dry.Close()
				ts = dry
			}
			return workflow.Process(cmd.Context(), ts, cctx.cfg, organize)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Execute the pipeline instead of reporting it")
	cmd.Flags().BoolVar(&organize, "organize", false, "Organize into per-day directories and download matching tracks")
	return cmd
}
