// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"go.uber.org/zap"

	"goaltask/internal/config"
	"goaltask/internal/service"
)

// Runtime is what the dispatcher hands to a command.
type Runtime struct {
	// Config is always set.
	Config *config.Config

	// Backends is nil if the command's NeedsBackends returns false.
	Backends *service.Backends

	// Log is always set.
	Log *zap.Logger
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackends returns true if the command talks to remote services.
	// The dispatcher validates the configuration before building them.
	NeedsBackends() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing and returns the exit code.
	Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int
}
