// Package service defines the backend-agnostic interfaces of the daily task pipeline.
package service

import "context"

// GoalSource reads the long-term goals document and flattens it to text,
// one line per content block.
type GoalSource interface {
	GoalsText(ctx context.Context) (string, error)
}

// Drafter turns one goal into a small actionable task.
// It never fails: problems are logged and the default draft is returned.
type Drafter interface {
	Draft(ctx context.Context, goal string) Draft
}

// TaskSink persists a draft as a new record and returns the record's ID.
type TaskSink interface {
	CreateTask(ctx context.Context, d Draft) (string, error)
}

// SchemaDescriber is implemented by sinks whose destination has a
// user-defined schema.
type SchemaDescriber interface {
	Schema(ctx context.Context) ([]SchemaField, error)
}

// Backends bundles the collaborators a command may need.
// Commands never import SDKs directly.
type Backends struct {
	Goals   GoalSource
	Drafter Drafter
	Sink    TaskSink
}
