package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gbagnoli/photo-process/internal/timezone"
)

func newTimezonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "timezones",
		Short:       "List the timezone cities accepted by --timezone",
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Args:        usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cities := timezone.All()
			rows := make([][]string, 0, len(cities))
			for _, city := range cities {
				rows = append(rows, []string{city.Name, strconv.Itoa(city.ID), city.Offset})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"City", "Code", "Offset"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}
