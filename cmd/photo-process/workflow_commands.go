package main

import (
	"github.com/spf13/cobra"

	"github.com/gbagnoli/photo-process/internal/workflow"
)

func newRenameCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename",
		Short: "Lowercase extensions, reset permissions, and rename images by capture date",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Rename(cmd.Context(), cctx.toolset, cctx.cfg)
		},
	}
}

func newSetTimeCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-time",
		Short: "Stamp images with the configured timezone and DST state",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.SetTime(cmd.Context(), cctx.toolset, cctx.cfg)
		},
	}
}

func newGeotagCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "geotag <gps-files...>",
		Short: "Geotag images against one or more GPS track files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Geotag(cmd.Context(), cctx.toolset, cctx.cfg, args)
		},
	}
}

func newShiftCommand(cctx *commandContext) *cobra.Command {
	var resetTZ bool

	cmd := &cobra.Command{
		Use:   "shift <by> <images...>",
		Short: "Shift image timestamps by [+|-]HH[:MM]",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var by string
			var images []string
			if len(args) > 0 {
				by, images = args[0], args[1:]
			}
			return workflow.Shift(cmd.Context(), cctx.toolset, cctx.cfg, by, resetTZ, images)
		},
	}

	cmd.Flags().BoolVar(&resetTZ, "reset-tz", false, "Clear every timezone tag alongside the shift")
	return cmd
}

func newAllCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "all <gps-files...>",
		Short: "Run geotag, set-time, and rename in order",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.All(cmd.Context(), cctx.toolset, cctx.cfg, args)
		},
	}
}
