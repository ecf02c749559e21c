package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped through -ldflags at release time.
var version = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the photo-process version",
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Args:        usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "photo-process %s\n", version)
			return nil
		},
	}
}
