package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"goaltask/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string        { return "logout" }
func (c *LogoutCmd) Aliases() []string   { return nil }
func (c *LogoutCmd) Synopsis() string    { return "Remove the stored Google Tasks token" }
func (c *LogoutCmd) Usage() string       { return "goaltask logout [common flags]" }
func (c *LogoutCmd) NeedsBackends() bool { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int {
	cfg := rt.Config
	if !cfg.HasToken() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}

	if err := cfg.RemoveToken(); err != nil {
		fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
		return exitcode.ConfigError
	}
	rt.Log.Debug("token removed", zap.String("path", cfg.TokenPath()))

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
