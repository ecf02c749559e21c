package main

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gbagnoli/photo-process/internal/config"
	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/runner"
	"github.com/gbagnoli/photo-process/internal/services"
	"github.com/gbagnoli/photo-process/internal/workflow"
)

// Annotation keys subcommands use to opt out of root setup stages, so
// utilities like `timezones` work without a config file or a valid images
// directory.
const (
	annotationSkipConfig    = "skipConfigLoad"
	annotationSkipWorkspace = "skipWorkspaceSetup"
)

// commandContext carries the state the root command resolves before a
// subcommand runs: the effective configuration, the invocation logger, and
// the wired toolset.
type commandContext struct {
	flags *rootFlags

	cfg        config.Config
	configPath string
	logger     *slog.Logger
	toolset    *workflow.Toolset
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// resolveConfig loads the configuration file and overlays the flags that were
// explicitly set. Flags win over file values, file values over defaults.
func (c *commandContext) resolveConfig(cmd *cobra.Command) error {
	loaded, path, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "", "config", "", err)
	}
	cfg := *loaded
	c.configPath = path

	fl := cmd.Flags()
	if fl.Changed("dst") && fl.Changed("no-dst") {
		return services.Wrap(services.ErrUsage, "", cmd.Name(), "--dst and --no-dst are mutually exclusive", nil)
	}
	if fl.Changed("images-dir") {
		expanded, err := config.ExpandPath(c.flags.imagesDir)
		if err != nil {
			return services.Wrap(services.ErrConfiguration, "", "config", "", err)
		}
		cfg.ImagesDir = expanded
	}
	if fl.Changed("timezone") {
		cfg.Timezone = strings.TrimSpace(c.flags.timezone)
	}
	if fl.Changed("dst") {
		cfg.DST = true
	}
	if fl.Changed("no-dst") {
		cfg.DST = false
	}
	if fl.Changed("timerange") {
		cfg.Timerange = c.flags.timerange
	}
	if fl.Changed("suffix") {
		cfg.Suffixes = config.NormalizeSuffixes(c.flags.suffixes)
	}
	cfg.DryRun = c.flags.dryRun

	if err := cfg.Validate(); err != nil {
		return services.Wrap(services.ErrConfiguration, "", "config", "", err)
	}
	c.cfg = cfg
	return nil
}

// setupWorkspace validates the images directory, builds the logger and
// toolset, and sweeps stale backup files so every workflow starts clean.
func (c *commandContext) setupWorkspace(cmd *cobra.Command) error {
	if err := c.cfg.ValidateImagesDir(); err != nil {
		return services.Wrap(services.ErrConfiguration, "", "config", "", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  c.cfg.Logging.Level,
		Format: c.cfg.Logging.Format,
	})
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "", "logging", "", err)
	}
	c.logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	run := runner.New(c.logger, c.cfg.DryRun, runner.WithEchoWriter(cmd.OutOrStdout()))
	ts, err := workflow.NewToolset(c.cfg, c.logger, run)
	if err != nil {
		return err
	}
	c.toolset = ts

	return workflow.Cleanup(cmd.Context(), ts, c.cfg)
}

// dryRunToolset builds a second toolset whose runner echoes instead of
// executing, for the one command that defaults to dry-run.
func (c *commandContext) dryRunToolset(cmd *cobra.Command) (*workflow.Toolset, error) {
	run := runner.New(c.logger, true, runner.WithEchoWriter(cmd.OutOrStdout()))
	return workflow.NewToolset(c.cfg, c.logger, run)
}

func (c *commandContext) close() error {
	if c.toolset == nil {
		return nil
	}
	return c.toolset.Close()
}

func hasAnnotation(cmd *cobra.Command, key string) bool {
	for cur := cmd; cur != nil; cur = cur.Parent() {
		if cur.Annotations != nil && cur.Annotations[key] == "true" {
			return true
		}
	}
	return false
}

// usageArgs maps cobra argument-count failures to usage errors so they exit
// with status 2 like every other bad invocation.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return services.Wrap(services.ErrUsage, "", cmd.Name(), err.Error(), nil)
		}
		return nil
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
