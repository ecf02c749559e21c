package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gbagnoli/photo-process/internal/deps"
	"github.com/gbagnoli/photo-process/internal/services"
)

func newDepsCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "deps",
		Short:       "Check that the external tools are installed",
		Annotations: map[string]string{annotationSkipWorkspace: "true"},
		Args:        usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := deps.CheckBinaries(deps.Requirements(cctx.cfg.Tools))

			var missing []string
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
					if !status.Optional {
						missing = append(missing, status.Name)
					}
				}
				required := "yes"
				if status.Optional {
					required = "no"
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					status.Description,
					required,
					state,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Binary", "Used for", "Required", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			if len(missing) > 0 {
				return services.Wrap(services.ErrNotFound, "", "deps",
					"missing required tools: "+strings.Join(missing, ", "), nil)
			}
			return nil
		},
	}
}
