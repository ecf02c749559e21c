package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gbagnoli/photo-process/internal/workflow"
)

func newDetectTimezoneCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "detect-timezone [paths...]",
		Short: "Report the timezone offset recorded in each path's images",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			detections := workflow.DetectTimezone(cmd.Context(), cctx.toolset, cctx.cfg, args)
			if len(detections) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No images found")
				return nil
			}

			rows := make([][]string, 0, len(detections))
			for _, det := range detections {
				offset, dst, note := det.Offset, yesNo(det.DST), ""
				if det.Err != nil {
					offset, dst, note = "-", "-", det.Err.Error()
				}
				rows = append(rows, []string{
					det.Path,
					strconv.Itoa(len(det.Images)),
					offset,
					dst,
					note,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Path", "Images", "Offset", "DST", "Note"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newShiftToUTCCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shift-to-utc [paths...]",
		Short: "Shift images back to UTC using their recorded timezone offsets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.ShiftToUTC(cmd.Context(), cctx.toolset, cctx.cfg, args)
		},
	}
}
