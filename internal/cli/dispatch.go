// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"goaltask/internal/commands"
	"goaltask/internal/config"
	"goaltask/internal/exitcode"
	"goaltask/internal/logging"
	"goaltask/internal/service"
)

// BackendFactory builds the remote collaborators from a validated config.
// It must not make network calls.
type BackendFactory func(ctx context.Context, cfg *config.Config, log *zap.Logger) (*service.Backends, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  BackendFactory
	loadCfg  func(dir string) (*config.Config, error)
}

// NewDispatcher creates a dispatcher with the given registry and backend factory.
func NewDispatcher(registry *commands.Registry, factory BackendFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		loadCfg:  config.Load,
	}
}

// SetConfigLoader replaces config.Load (for testing).
func (d *Dispatcher) SetConfigLoader(load func(dir string) (*config.Config, error)) {
	d.loadCfg = load
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> the default command with no args
	if len(args) == 0 {
		args = []string{commands.DefaultCommand}
	}

	name := args[0]

	// Flags require a command
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below

	var configDir string
	var quiet, debug bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return flagError(errOut, err)
	}

	// A dash after positional args should have been a flag
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := d.loadCfg(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	log := logging.New(errOut, debug, quiet).Named(cmd.Name())
	defer log.Sync()

	rt := &commands.Runtime{Config: cfg, Log: log}

	if cmd.NeedsBackends() {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.ConfigError
		}
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no backends available")
			return exitcode.ConfigError
		}
		backends, err := d.factory(ctx, cfg, log)
		if err != nil {
			var cerr *config.ConfigError
			if errors.As(err, &cerr) {
				fmt.Fprintf(errOut, "error: %s\n", err)
			} else {
				// Building backends only reads local credentials.
				fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			}
			return exitcode.ConfigError
		}
		rt.Backends = backends
	}

	log.Debug("dispatching", zap.String("config_dir", cfg.Dir), zap.Strings("args", positional))
	return cmd.Run(ctx, rt, positional, out, errOut)
}

// flagError reports a flag parsing error in the CLI's error style.
func flagError(errOut io.Writer, err error) int {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag needs an argument:"):
		name := strings.TrimSpace(strings.TrimPrefix(msg, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", name)
	case strings.HasPrefix(msg, "flag provided but not defined:"):
		name := strings.TrimSpace(strings.TrimPrefix(msg, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", name)
	default:
		fmt.Fprintf(errOut, "error: %s\n", msg)
	}
	return exitcode.UserError
}
