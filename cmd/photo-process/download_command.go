package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/services"
	"github.com/gbagnoli/photo-process/internal/workflow"
)

func newDownloadCommand(cctx *commandContext) *cobra.Command {
	var startDate string
	var endDate string

	cmd := &cobra.Command{
		Use:   "download-gpx [dest]",
		Short: "Download GPS tracks from the garmin account and merge them",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := cctx.cfg.ImagesDir
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				dest = expanded
			}

			start, err := parseDay(cmd, "start-date", startDate)
			if err != nil {
				return err
			}
			end, err := parseDay(cmd, "end-date", endDate)
			if err != nil {
				return err
			}
			if !start.IsZero() && !end.IsZero() && end.Before(start) {
				return services.Wrap(services.ErrUsage, "", cmd.Name(), "--end-date is before --start-date", nil)
			}

			return workflow.DownloadTracks(cmd.Context(), cctx.toolset, cctx.cfg, dest, start, end)
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "Earliest activity date, YYYY-MM-DD (default: 20 days before the end date)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Latest activity date, YYYY-MM-DD (default: today)")
	return cmd
}

func parseDay(cmd *cobra.Command, flag, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrUsage, "", cmd.Name(),
			fmt.Sprintf("--%s must be a YYYY-MM-DD date, got %q", flag, value), nil)
	}
	return day, nil
}
