package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"goaltask/internal/config"
	"goaltask/internal/exitcode"
	"goaltask/internal/output"
)

func init() {
	Register(&CheckCmd{})
}

// CheckCmd implements the check command. It makes no network calls.
type CheckCmd struct{}

func (c *CheckCmd) Name() string        { return "check" }
func (c *CheckCmd) Aliases() []string   { return nil }
func (c *CheckCmd) Synopsis() string    { return "Report which settings are configured" }
func (c *CheckCmd) Usage() string       { return "goaltask check" }
func (c *CheckCmd) NeedsBackends() bool { return false }

func (c *CheckCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CheckCmd) Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int {
	cfg := rt.Config
	settings := cfg.Settings()
	if cfg.Destination == config.DestinationGTasks {
		settings = append(settings,
			config.Setting{Name: config.OAuthClientFile, OK: cfg.HasOAuthClient()},
			config.Setting{Name: config.TokenFile, OK: cfg.HasToken()},
		)
	}

	ok := true
	for _, s := range settings {
		if !cfg.Quiet {
			output.FormatSetting(out, s)
		}
		ok = ok && s.OK
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	if !ok {
		fmt.Fprintln(errOut, "error: not configured")
		return exitcode.ConfigError
	}
	return exitcode.Success
}
