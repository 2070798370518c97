package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"goaltask/internal/exitcode"
	"goaltask/internal/output"
	"goaltask/internal/pipeline"
)

func init() {
	Register(&GoalsCmd{})
}

// GoalsCmd implements the goals command.
type GoalsCmd struct{}

func (c *GoalsCmd) Name() string        { return "goals" }
func (c *GoalsCmd) Aliases() []string   { return nil }
func (c *GoalsCmd) Synopsis() string    { return "List the candidate goals" }
func (c *GoalsCmd) Usage() string       { return "goaltask goals" }
func (c *GoalsCmd) NeedsBackends() bool { return true }

func (c *GoalsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *GoalsCmd) Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}

	runner := &pipeline.Runner{Goals: rt.Backends.Goals, Log: rt.Log}
	candidates, err := runner.Candidates(ctx)
	if err != nil {
		return reportError(rt, errOut, err)
	}

	if len(candidates) == 0 {
		if !rt.Config.Quiet {
			fmt.Fprintln(out, "no goals found")
		}
		return exitcode.Success
	}
	for i, goal := range candidates {
		output.FormatGoal(out, i+1, goal)
	}
	return exitcode.Success
}
