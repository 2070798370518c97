package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"goaltask/internal/backend/googletasks"
	"goaltask/internal/exitcode"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command for the Google Tasks destination.
type LoginCmd struct{}

func (c *LoginCmd) Name() string        { return "login" }
func (c *LoginCmd) Aliases() []string   { return nil }
func (c *LoginCmd) Synopsis() string    { return "Authenticate with Google Tasks" }
func (c *LoginCmd) Usage() string       { return "goaltask login [common flags]" }
func (c *LoginCmd) NeedsBackends() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int {
	cfg := rt.Config
	if !cfg.HasOAuthClient() {
		fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n\n", cfg.Dir)
		fmt.Fprint(errOut, oauthSetupHelp)
		fmt.Fprintf(errOut, "   %s/oauth_client.json\n\n", cfg.Dir)
		fmt.Fprintln(errOut, "Then run 'goaltask login' again.")
		return exitcode.ConfigError
	}

	if cfg.HasToken() && googletasks.TokenValid(ctx, cfg) {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	if err := googletasks.Login(ctx, cfg, errOut); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

const oauthSetupHelp = `To save tasks to Google Tasks, you need OAuth credentials:

1. Go to https://console.cloud.google.com/apis/credentials
2. Create a project (or select an existing one)
3. Enable the Google Tasks API:
   https://console.cloud.google.com/apis/library/tasks.googleapis.com
4. Create OAuth 2.0 credentials:
   - Click 'Create Credentials' > 'OAuth client ID'
   - Choose 'Desktop app' as application type
   - Download the JSON file
5. Save it as:
`
