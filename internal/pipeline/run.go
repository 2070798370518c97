// Package pipeline runs the daily task flow once:
// fetch goals, extract candidates, pick one, draft a task, write it.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"goaltask/internal/goals"
	"goaltask/internal/service"
)

// Runner wires the pipeline steps together. All fields are required except
// Sink, which may be nil for dry runs.
type Runner struct {
	Goals   service.GoalSource
	Drafter service.Drafter
	Sink    service.TaskSink
	Picker  *goals.Picker
	Log     *zap.Logger
}

// Result describes one run.
type Result struct {
	Candidates []string
	Goal       string
	Draft      service.Draft
	// TaskID is empty for dry runs.
	TaskID string
}

// Candidates fetches the goals document and extracts the candidate lines.
func (r *Runner) Candidates(ctx context.Context) ([]string, error) {
	text, err := r.Goals.GoalsText(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch goals: %w", err)
	}
	candidates := goals.Extract(text)
	r.Log.Info("extracted goals", zap.Int("count", len(candidates)))
	return candidates, nil
}

// Run executes the pipeline. A failure before the write leaves the
// destination untouched; with dryRun the write is skipped entirely.
func (r *Runner) Run(ctx context.Context, dryRun bool) (Result, error) {
	var res Result

	candidates, err := r.Candidates(ctx)
	if err != nil {
		return res, err
	}
	res.Candidates = candidates

	goal, idx := r.Picker.Pick(candidates)
	if idx < 0 {
		r.Log.Info("no goals found, using fallback", zap.String("goal", goal))
	} else {
		r.Log.Info("selected goal", zap.String("goal", goal), zap.Int("index", idx))
	}
	res.Goal = goal

	res.Draft = r.Drafter.Draft(ctx, goal)
	r.Log.Info("drafted task", zap.String("title", res.Draft.Title))

	if dryRun {
		return res, nil
	}
	if r.Sink == nil {
		return res, errors.New("no task destination configured")
	}

	id, err := r.Sink.CreateTask(ctx, res.Draft)
	if err != nil {
		return res, fmt.Errorf("create task: %w", err)
	}
	res.TaskID = id
	r.Log.Info("created task", zap.String("id", id))
	return res, nil
}
