package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/3-lines-studio/sweep/internal/core"
)

type PhaseInput struct {
	Site       core.Site
	Phase      core.Phase
	Components []string
}

type StepResult struct {
	Component string
	Action    core.Action
	Tasks     []core.FileTask
	Skipped   []string
	Duration  time.Duration
	Err       error
}

type PhaseOutput struct {
	Phase   core.Phase
	Steps   []StepResult
	Success bool
	Error   error
}

func (o PhaseOutput) Tasks() []core.FileTask {
	var tasks []core.FileTask
	for _, step := range o.Steps {
		tasks = append(tasks, step.Tasks...)
	}
	return tasks
}

func (o PhaseOutput) Skipped() []string {
	var skipped []string
	for _, step := range o.Steps {
		skipped = append(skipped, step.Skipped...)
	}
	return skipped
}

type PhaseService struct {
	sweeper *SweepService
}

func NewPhaseService(sweeper *SweepService) *PhaseService {
	return &PhaseService{sweeper: sweeper}
}

// Run sweeps every step the selected components declare for the phase. The
// first failing step stops the run.
func (s *PhaseService) Run(ctx context.Context, input PhaseInput) PhaseOutput {
	return s.walk(ctx, input, false)
}

// Plan reports what Run would do without touching any destination.
func (s *PhaseService) Plan(ctx context.Context, input PhaseInput) PhaseOutput {
	return s.walk(ctx, input, true)
}

func (s *PhaseService) walk(ctx context.Context, input PhaseInput, dryRun bool) PhaseOutput {
	output := PhaseOutput{Phase: input.Phase}

	if err := input.Site.Validate(); err != nil {
		output.Error = fmt.Errorf("invalid site: %w", err)
		return output
	}

	components, err := input.Site.Select(input.Components...)
	if err != nil {
		output.Error = err
		return output
	}

	for _, component := range components {
		for _, step := range component.Steps(input.Phase) {
			req := input.Site.Request(component, step)

			start := time.Now()
			tasks, skipped, err := s.sweeper.sweep(ctx, req, dryRun)
			output.Steps = append(output.Steps, StepResult{
				Component: component.Name,
				Action:    step.Action,
				Tasks:     tasks,
				Skipped:   skipped,
				Duration:  time.Since(start),
				Err:       err,
			})

			if err != nil {
				output.Error = fmt.Errorf("component %s %s: %w", component.Name, input.Phase, err)
				return output
			}
		}
	}

	output.Success = true
	return output
}
