package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootFlags struct {
	imagesDir  string
	timezone   string
	dst        bool
	noDST      bool
	timerange  int
	suffixes   []string
	dryRun     bool
	configPath string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags
	cctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "photo-process",
		Short:         "Photo import pipeline around exiftool, gpsbabel, and gpicsync",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The bare root command only prints help.
			if cmd.Parent() == nil || hasAnnotation(cmd, annotationSkipConfig) {
				return nil
			}
			if err := cctx.resolveConfig(cmd); err != nil {
				return err
			}
			if hasAnnotation(cmd, annotationSkipWorkspace) {
				return nil
			}
			return cctx.setupWorkspace(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return cctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.imagesDir, "images-dir", "d", "", "Directory holding the images to process")
	pf.StringVarP(&flags.timezone, "timezone", "z", "", "Timezone city the camera clock was set to")
	pf.BoolVar(&flags.dst, "dst", false, "Camera clock observes daylight savings")
	pf.BoolVar(&flags.noDST, "no-dst", false, "Camera clock ignores daylight savings")
	pf.IntVar(&flags.timerange, "timerange", 0, "Geotag correlation window in seconds")
	pf.StringSliceVarP(&flags.suffixes, "suffix", "e", nil, "Media extensions to process (comma separated)")
	pf.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Echo external commands without executing them")
	pf.StringVar(&flags.configPath, "config", "", "Configuration file path")
	pf.SetNormalizeFunc(normalizeFlagName)

	rootCmd.AddCommand(
		newRenameCommand(cctx),
		newSetTimeCommand(cctx),
		newGeotagCommand(cctx),
		newShiftCommand(cctx),
		newAllCommand(cctx),
		newDetectTimezoneCommand(cctx),
		newShiftToUTCCommand(cctx),
		newOrganizeCommand(cctx),
		newProcessCommand(cctx),
		newDownloadCommand(cctx),
		newTimezonesCommand(),
		newDepsCommand(cctx),
		newConfigCommand(cctx),
		newVersionCommand(),
	)

	return rootCmd
}

// normalizeFlagName folds the historical --ext spelling into --suffix.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "ext" {
		name = "suffix"
	}
	return pflag.NormalizedName(name)
}
