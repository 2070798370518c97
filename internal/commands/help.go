package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"goaltask/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string        { return "help" }
func (c *HelpCmd) Aliases() []string   { return nil }
func (c *HelpCmd) Synopsis() string    { return "Print usage" }
func (c *HelpCmd) Usage() string       { return "goaltask help" }
func (c *HelpCmd) NeedsBackends() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  goaltask                                Same as goaltask run
  goaltask run [common flags] [--dry-run] Draft a task from a random goal and save it
  goaltask goals [common flags]           List the candidate goals
  goaltask schema [common flags]          Show the fields of the task database
  goaltask check [common flags]           Report which settings are configured
  goaltask login [common flags]           Authenticate with Google Tasks
  goaltask logout [common flags]          Remove the stored Google Tasks token
  goaltask help
  goaltask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Settings are read from the environment and from .env in the config
directory or the working directory:
  NOTION_TOKEN, OPENAI_API_KEY, GOALS_PAGE_ID, TODO_DATABASE_ID,
  NOTION_VERSION, NOTION_BASE_URL, OPENAI_MODEL, OPENAI_BASE_URL,
  TASK_DESTINATION (notion or gtasks), GTASKS_LIST, HTTP_TIMEOUT
`
