package commands

import (
	"context"
	"flag"
	"io"

	"goaltask/internal/exitcode"
	"goaltask/internal/goals"
	"goaltask/internal/output"
	"goaltask/internal/pipeline"
)

func init() {
	Register(&RunCmd{})
}

// RunCmd implements the run command: one pass of the daily task pipeline.
type RunCmd struct {
	dryRun bool
	picker *goals.Picker
}

// SetPicker replaces the random goal picker (for testing).
func (c *RunCmd) SetPicker(p *goals.Picker) {
	c.picker = p
}

// SetDryRun sets the dry-run flag (for testing).
func (c *RunCmd) SetDryRun(v bool) {
	c.dryRun = v
}

func (c *RunCmd) Name() string        { return "run" }
func (c *RunCmd) Aliases() []string   { return nil }
func (c *RunCmd) Synopsis() string    { return "Draft one task from a random goal and save it" }
func (c *RunCmd) Usage() string       { return "goaltask run [--dry-run]" }
func (c *RunCmd) NeedsBackends() bool { return true }

func (c *RunCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.dryRun, "dry-run", false, "")
	fs.BoolVar(&c.dryRun, "n", false, "")
}

func (c *RunCmd) Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}

	picker := c.picker
	if picker == nil {
		picker = goals.NewPicker()
	}
	runner := &pipeline.Runner{
		Goals:   rt.Backends.Goals,
		Drafter: rt.Backends.Drafter,
		Sink:    rt.Backends.Sink,
		Picker:  picker,
		Log:     rt.Log,
	}

	res, err := runner.Run(ctx, c.dryRun)
	if err != nil {
		return reportError(rt, errOut, err)
	}

	if !rt.Config.Quiet {
		if c.dryRun {
			output.FormatDraft(out, res.Draft)
		} else {
			output.FormatCreated(out, res.TaskID, res.Draft)
		}
	}
	return exitcode.Success
}
