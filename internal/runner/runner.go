// Package runner executes external commands for the workflow functions.
//
// Every collaborator invocation funnels through one Runner so command echo,
// structured logging, dry-run short-circuiting, and failure wrapping stay
// uniform. Foreground commands inherit the console; the capture variant
// returns trimmed stdout while stderr stays attached for interactive tools.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/gbagnoli/photo-process/internal/logging"
	"github.com/gbagnoli/photo-process/internal/services"
)

// Executor abstracts command execution for testability.
type Executor interface {
	// Run executes the command attached to the invoking process's streams.
	Run(ctx context.Context, binary string, args []string) error
	// Output executes the command, returning captured stdout with stderr
	// still attached to the console.
	Output(ctx context.Context, binary string, args []string) (string, error)
}

// Runner echoes and dispatches external commands.
type Runner struct {
	exec   Executor
	logger *slog.Logger
	echo   io.Writer
	dryRun bool
}

// Option configures the runner.
type Option func(*Runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(executor Executor) Option {
	return func(r *Runner) {
		if executor != nil {
			r.exec = executor
		}
	}
}

// WithEchoWriter redirects the command echo away from stdout.
func WithEchoWriter(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.echo = w
		}
	}
}

// New constructs a runner. A nil logger is replaced with a no-op one.
func New(logger *slog.Logger, dryRun bool, opts ...Option) *Runner {
	r := &Runner{
		exec:   commandExecutor{},
		logger: logging.NewComponentLogger(logger, "runner"),
		echo:   os.Stdout,
		dryRun: dryRun,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DryRun reports whether the runner echoes without executing.
func (r *Runner) DryRun() bool {
	return r.dryRun
}

// Run dispatches a foreground command: the fully resolved command line is
// echoed and logged before execution, the process inherits the console, and
// a non-zero exit surfaces as an external tool error naming the binary.
func (r *Runner) Run(ctx context.Context, binary string, args ...string) error {
	return r.run(ctx, binary, args, nil)
}

// RunFiles behaves like Run with a trailing file list. The argv always
// carries every file; the echo summarizes long lists to keep the console
// readable.
func (r *Runner) RunFiles(ctx context.Context, binary string, args []string, files []string) error {
	return r.run(ctx, binary, args, files)
}

func (r *Runner) run(ctx context.Context, binary string, args, files []string) error {
	display := displayCommand(binary, args, files)
	logging.WithContext(ctx, r.logger).Debug("dispatching command",
		logging.String(logging.FieldTool, binary),
		logging.String(logging.FieldCommand, fullCommand(binary, args, files)),
		logging.Bool("dry_run", r.dryRun),
	)

	if r.dryRun {
		r.printEcho(color.FgGreen, false, "DRY-RUN: "+display)
		return nil
	}
	r.printEcho(color.FgCyan, true, "Running: "+display)

	argv := append(append([]string{}, args...), files...)
	if err := r.exec.Run(ctx, binary, argv); err != nil {
		return services.Wrap(services.ErrExternalTool, binary, "", "", err)
	}
	return nil
}

// Output dispatches a command and captures its trimmed stdout. Capture runs
// even under dry-run: reads are needed to plan the commands a dry run
// reports.
func (r *Runner) Output(ctx context.Context, binary string, args ...string) (string, error) {
	logging.WithContext(ctx, r.logger).Debug("capturing command output",
		logging.String(logging.FieldTool, binary),
		logging.String(logging.FieldCommand, fullCommand(binary, args, nil)),
	)

	out, err := r.exec.Output(ctx, binary, args)
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, binary, "", "", err)
	}
	return out, nil
}

func (r *Runner) printEcho(attr color.Attribute, bold bool, line string) {
	if shouldColorize(r.echo) {
		attrs := []color.Attribute{attr}
		if bold {
			attrs = append(attrs, color.Bold)
		}
		color.New(attrs...).Fprintln(r.echo, line)
		return
	}
	fmt.Fprintln(r.echo, line)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// displayCommand renders the human-facing echo line: arguments containing
// whitespace are quoted, and a trailing file list longer than one entry is
// summarized.
func displayCommand(binary string, args, files []string) string {
	var b strings.Builder
	b.WriteString(binary)
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(quoteArg(arg))
	}
	if len(files) > 0 {
		b.WriteByte(' ')
		b.WriteString(quoteArg(files[0]))
		if len(files) > 1 {
			fmt.Fprintf(&b, " ... (and %d more files)", len(files)-1)
		}
	}
	return b.String()
}

func fullCommand(binary string, args, files []string) string {
	parts := make([]string, 0, 1+len(args)+len(files))
	parts = append(parts, binary)
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	for _, file := range files {
		parts = append(parts, quoteArg(file))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\n\"") {
		return fmt.Sprintf("%q", arg)
	}
	return arg
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}
	return waitErr(binary, cmd.Wait())
}

func (commandExecutor) Output(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start command: %w", err)
	}
	if err := waitErr(binary, cmd.Wait()); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

func waitErr(binary string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return fmt.Errorf("%s exited with status %d", binary, status.ExitStatus())
		}
	}
	return fmt.Errorf("%s failed: %w", binary, err)
}
