package commands_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"go.uber.org/zap"

	"goaltask/internal/commands"
	"goaltask/internal/config"
	"goaltask/internal/exitcode"
	"goaltask/internal/goals"
	"goaltask/internal/service"
	"goaltask/internal/testutil"
)

const goalsDoc = "# Goals\n- Learn Spanish\n- Run a marathon\n"

// testConfig returns a fully configured notion-destination config.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Dir:            t.TempDir(),
		NotionToken:    "secret",
		NotionVersion:  "2022-06-28",
		NotionBaseURL:  "https://api.notion.com",
		GoalsPageID:    "page-1",
		TodoDatabaseID: "db-1",
		OpenAIAPIKey:   "sk-test",
		OpenAIModel:    "gpt-3.5-turbo",
		Destination:    config.DestinationNotion,
		GTasksList:     "@default",
		HTTPTimeout:    30 * time.Second,
	}
}

// runCommand is a helper to run a command against in-memory backends.
func runCommand(t *testing.T, cmd commands.Command, cfg *config.Config, backends *service.Backends, args []string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	if cfg == nil {
		cfg = testConfig(t)
	}
	rt := &commands.Runtime{Config: cfg, Backends: backends, Log: zap.NewNop()}

	code = cmd.Run(context.Background(), rt, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func newRunCmd(dryRun bool) *commands.RunCmd {
	cmd := &commands.RunCmd{}
	cmd.SetPicker(goals.NewPickerWithSource(rand.NewPCG(3, 4)))
	cmd.SetDryRun(dryRun)
	return cmd
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, nil, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "goaltask 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, nil, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.Golden(t, "help", stdout)
}

// Tests for run command
func TestRunCommand_Success(t *testing.T) {
	drafter := &testutil.FakeDrafter{Result: service.Draft{Title: "Pack a gym bag", Description: "Lay out clothes."}}
	sink := testutil.NewFakeSink()

	stdout, stderr, code := runCommand(t, newRunCmd(false), nil, testutil.NewBackends(goalsDoc, drafter, sink), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "created task task-1: Pack a gym bag\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if n := len(sink.Created()); n != 1 {
		t.Fatalf("expected 1 created task, got %d", n)
	}
	if got := drafter.Goals(); len(got) != 1 || (got[0] != "Learn Spanish" && got[0] != "Run a marathon") {
		t.Errorf("drafter called with %q", got)
	}
}

func TestRunCommand_Quiet(t *testing.T) {
	cfg := testConfig(t)
	cfg.Quiet = true
	sink := testutil.NewFakeSink()

	stdout, _, code := runCommand(t, newRunCmd(false), cfg, testutil.NewBackends(goalsDoc, &testutil.FakeDrafter{}, sink), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
	if len(sink.Created()) != 1 {
		t.Error("expected the task to be created in quiet mode")
	}
}

func TestRunCommand_DryRun(t *testing.T) {
	drafter := &testutil.FakeDrafter{Result: service.Draft{Title: "Pack a gym bag", Description: "Lay out clothes and shoes tonight."}}
	sink := testutil.NewFakeSink()

	stdout, _, code := runCommand(t, newRunCmd(true), nil, testutil.NewBackends(goalsDoc, drafter, sink), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if len(sink.Created()) != 0 {
		t.Errorf("dry run created %d tasks", len(sink.Created()))
	}
	testutil.Golden(t, "run_dry", stdout)
}

func TestRunCommand_RemoteError(t *testing.T) {
	backends := testutil.NewBackends("", &testutil.FakeDrafter{}, testutil.NewFakeSink())
	backends.Goals.(*testutil.FakeGoals).Err = &service.RemoteError{Op: "read page", StatusCode: 404, Body: `{"object":"error"}`}

	stdout, stderr, code := runCommand(t, newRunCmd(false), nil, backends, nil)

	if code != exitcode.RemoteError {
		t.Errorf("expected exit code %d, got %d", exitcode.RemoteError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	expected := "error: remote error: fetch goals: failed to read page: 404 - {\"object\":\"error\"}\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestRunCommand_WriteFailure(t *testing.T) {
	sink := testutil.NewFakeSink()
	sink.CreateTaskErr = errors.New("connection reset")

	_, stderr, code := runCommand(t, newRunCmd(false), nil, testutil.NewBackends(goalsDoc, &testutil.FakeDrafter{}, sink), nil)

	if code != exitcode.RemoteError {
		t.Errorf("expected exit code %d, got %d", exitcode.RemoteError, code)
	}
	if stderr != "error: backend error: create task: connection reset\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRunCommand_UnexpectedArgument(t *testing.T) {
	_, stderr, code := runCommand(t, newRunCmd(false), nil, testutil.NewBackends(goalsDoc, &testutil.FakeDrafter{}, testutil.NewFakeSink()), []string{"now"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: now\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for goals command
func TestGoalsCommand(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.GoalsCmd{}, nil, testutil.NewBackends(goalsDoc, nil, nil), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	testutil.Golden(t, "goals", stdout)
}

func TestGoalsCommand_Empty(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.GoalsCmd{}, nil, testutil.NewBackends("# Goals\n", nil, nil), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no goals found\n" {
		t.Errorf("expected 'no goals found', got %q", stdout)
	}
}

// Tests for schema command
func TestSchemaCommand(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.SchemaCmd{}, nil, testutil.NewBackends("", nil, testutil.NewFakeSink()), nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	testutil.Golden(t, "schema", stdout)
}

func TestSchemaCommand_WrongDestination(t *testing.T) {
	cfg := testConfig(t)
	cfg.Destination = config.DestinationGTasks

	_, stderr, code := runCommand(t, &commands.SchemaCmd{}, cfg, testutil.NewBackends("", nil, testutil.NewFakeSink()), nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: schema is only available for the notion destination\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestSchemaCommand_RemoteError(t *testing.T) {
	sink := testutil.NewFakeSink()
	sink.SchemaErr = &service.RemoteError{Op: "get database", StatusCode: 401, Body: "unauthorized"}

	_, stderr, code := runCommand(t, &commands.SchemaCmd{}, nil, testutil.NewBackends("", nil, sink), nil)

	if code != exitcode.RemoteError {
		t.Errorf("expected exit code %d, got %d", exitcode.RemoteError, code)
	}
	if stderr != "error: remote error: failed to get database: 401 - unauthorized\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for check command
func TestCheckCommand_Configured(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.CheckCmd{}, nil, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	testutil.Golden(t, "check_ok", stdout)
}

func TestCheckCommand_Placeholders(t *testing.T) {
	cfg := testConfig(t)
	cfg.GoalsPageID = config.GoalsPagePlaceholder
	cfg.TodoDatabaseID = config.TodoDatabasePlaceholder

	stdout, stderr, code := runCommand(t, &commands.CheckCmd{}, cfg, nil, nil)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if stderr != "error: not configured: GOALS_PAGE_ID, TODO_DATABASE_ID\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	testutil.Golden(t, "check_placeholders", stdout)
}

func TestCheckCommand_GTasksWithoutLogin(t *testing.T) {
	cfg := testConfig(t)
	cfg.Destination = config.DestinationGTasks

	stdout, _, code := runCommand(t, &commands.CheckCmd{}, cfg, nil, nil)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	testutil.Golden(t, "check_gtasks", stdout)
}
