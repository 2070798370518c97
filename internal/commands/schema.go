package commands

import (
	"context"
	"flag"
	"io"

	"goaltask/internal/config"
	"goaltask/internal/exitcode"
	"goaltask/internal/output"
	"goaltask/internal/service"
)

func init() {
	Register(&SchemaCmd{})
}

// SchemaCmd implements the schema command.
type SchemaCmd struct{}

func (c *SchemaCmd) Name() string        { return "schema" }
func (c *SchemaCmd) Aliases() []string   { return []string{"fields"} }
func (c *SchemaCmd) Synopsis() string    { return "Show the fields of the task database" }
func (c *SchemaCmd) Usage() string       { return "goaltask schema" }
func (c *SchemaCmd) NeedsBackends() bool { return true }

func (c *SchemaCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SchemaCmd) Run(ctx context.Context, rt *Runtime, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return usageError(errOut, "unexpected argument: %s", args[0])
	}
	if rt.Config.Destination != config.DestinationNotion {
		return usageError(errOut, "schema is only available for the %s destination", config.DestinationNotion)
	}
	describer, ok := rt.Backends.Sink.(service.SchemaDescriber)
	if !ok {
		return usageError(errOut, "task destination has no schema")
	}

	fields, err := describer.Schema(ctx)
	if err != nil {
		return reportError(rt, errOut, err)
	}
	for _, f := range fields {
		output.FormatSchemaField(out, f)
	}
	return exitcode.Success
}
