// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"goaltask/internal/service"
)

// FakeGoals is an in-memory service.GoalSource.
type FakeGoals struct {
	Text string

	// Error injection for testing
	Err error

	mu    sync.Mutex
	calls int
}

// NewFakeGoals creates a FakeGoals returning text.
func NewFakeGoals(text string) *FakeGoals {
	return &FakeGoals{Text: text}
}

// GoalsText implements service.GoalSource.
func (f *FakeGoals) GoalsText(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

// Calls returns how many times GoalsText was called.
func (f *FakeGoals) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeDrafter is a service.Drafter that returns a fixed draft, or the
// default draft when Result is zero.
type FakeDrafter struct {
	Result service.Draft

	mu    sync.Mutex
	goals []string
}

// Draft implements service.Drafter.
func (f *FakeDrafter) Draft(ctx context.Context, goal string) service.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.goals = append(f.goals, goal)
	if f.Result == (service.Draft{}) {
		return service.DefaultDraft()
	}
	return f.Result
}

// Goals returns the goals passed to Draft, in call order.
func (f *FakeDrafter) Goals() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.goals...)
}

// FakeSink is an in-memory service.TaskSink and service.SchemaDescriber.
type FakeSink struct {
	Fields []service.SchemaField

	// Error injection for testing
	CreateTaskErr error
	SchemaErr     error

	mu      sync.Mutex
	created []service.Draft
}

var (
	_ service.TaskSink        = (*FakeSink)(nil)
	_ service.SchemaDescriber = (*FakeSink)(nil)
)

// NewFakeSink creates a FakeSink with a typical to-do schema.
func NewFakeSink() *FakeSink {
	return &FakeSink{
		Fields: []service.SchemaField{
			{Name: "Name", Type: service.FieldTitle, RawType: "title"},
			{Name: "Status", Type: service.FieldSelect, RawType: "select", Options: []string{"To Do", "Done"}},
			{Name: "Due", Type: service.FieldDate, RawType: "date"},
		},
	}
}

// CreateTask implements service.TaskSink. IDs are "task-1", "task-2", ...
func (f *FakeSink) CreateTask(ctx context.Context, d service.Draft) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateTaskErr != nil {
		return "", f.CreateTaskErr
	}
	f.created = append(f.created, d)
	return fmt.Sprintf("task-%d", len(f.created)), nil
}

// Schema implements service.SchemaDescriber.
func (f *FakeSink) Schema(ctx context.Context) ([]service.SchemaField, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SchemaErr != nil {
		return nil, f.SchemaErr
	}
	return f.Fields, nil
}

// Created returns the drafts written so far.
func (f *FakeSink) Created() []service.Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.Draft(nil), f.created...)
}

// NewBackends bundles fakes into service.Backends.
func NewBackends(text string, drafter *FakeDrafter, sink *FakeSink) *service.Backends {
	return &service.Backends{
		Goals:   NewFakeGoals(text),
		Drafter: drafter,
		Sink:    sink,
	}
}
