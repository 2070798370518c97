package pipeline

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goaltask/internal/goals"
	"goaltask/internal/service"
	"goaltask/internal/testutil"
)

func newRunner(text string, drafter *testutil.FakeDrafter, sink *testutil.FakeSink) (*Runner, *testutil.FakeGoals) {
	src := testutil.NewFakeGoals(text)
	return &Runner{
		Goals:   src,
		Drafter: drafter,
		Sink:    sink,
		Picker:  goals.NewPickerWithSource(rand.NewPCG(1, 2)),
		Log:     zap.NewNop(),
	}, src
}

func TestRun_EndToEnd(t *testing.T) {
	drafter := &testutil.FakeDrafter{Result: service.Draft{Title: "Learn five verbs", Description: "Use flashcards."}}
	sink := testutil.NewFakeSink()
	r, _ := newRunner("# Goals\n- Learn Spanish\n- Run a marathon\n", drafter, sink)

	res, err := r.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Learn Spanish", "Run a marathon"}, res.Candidates)
	assert.Contains(t, res.Candidates, res.Goal)
	assert.Equal(t, []string{res.Goal}, drafter.Goals())

	created := sink.Created()
	require.Len(t, created, 1)
	assert.Equal(t, "Learn five verbs", created[0].Title)
	assert.Equal(t, "task-1", res.TaskID)
}

func TestRun_EmptyGoalsUsesFallback(t *testing.T) {
	drafter := &testutil.FakeDrafter{}
	sink := testutil.NewFakeSink()
	r, _ := newRunner("# Only headings\n\n", drafter, sink)

	res, err := r.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Empty(t, res.Candidates)
	assert.Equal(t, goals.Fallback, res.Goal)
	assert.Equal(t, []service.Draft{service.DefaultDraft()}, sink.Created())
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	sink := testutil.NewFakeSink()
	r, _ := newRunner("- Learn Spanish\n", &testutil.FakeDrafter{}, sink)

	res, err := r.Run(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, "Learn Spanish", res.Goal)
	assert.Empty(t, res.TaskID)
	assert.Empty(t, sink.Created())
}

func TestRun_FetchErrorStopsBeforeWrite(t *testing.T) {
	drafter := &testutil.FakeDrafter{}
	sink := testutil.NewFakeSink()
	r, src := newRunner("", drafter, sink)
	src.Err = &service.RemoteError{Op: "read page", StatusCode: 404, Body: "{}"}

	_, err := r.Run(context.Background(), false)

	var rerr *service.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 404, rerr.StatusCode)
	assert.Empty(t, drafter.Goals())
	assert.Empty(t, sink.Created())
}

func TestRun_WriteError(t *testing.T) {
	sink := testutil.NewFakeSink()
	sink.CreateTaskErr = errors.New("boom")
	r, _ := newRunner("- Learn Spanish\n", &testutil.FakeDrafter{}, sink)

	res, err := r.Run(context.Background(), false)

	assert.EqualError(t, err, "create task: boom")
	assert.Empty(t, res.TaskID)
	assert.Empty(t, sink.Created())
}

func TestRun_NoSink(t *testing.T) {
	r, _ := newRunner("- Learn Spanish\n", &testutil.FakeDrafter{}, nil)
	r.Sink = nil

	_, err := r.Run(context.Background(), false)
	assert.Error(t, err)
}
