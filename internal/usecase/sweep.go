package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/3-lines-studio/sweep/internal/core"
)

type SweepService struct {
	fs       FileSystem
	checker  *StalenessChecker
	markdown MarkdownRenderer
	template TemplateRenderer
	cli      CLIOutput
	logger   *slog.Logger
}

func NewSweepService(fs FileSystem, markdown MarkdownRenderer, template TemplateRenderer, cli CLIOutput, logger *slog.Logger) *SweepService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SweepService{
		fs:       fs,
		checker:  NewStalenessChecker(fs),
		markdown: markdown,
		template: template,
		cli:      cli,
		logger:   logger,
	}
}

// Sweep walks req.FileNames in order and performs req.Action for every file
// whose destination is missing or older than its source. It returns the tasks
// performed before any error.
func (s *SweepService) Sweep(ctx context.Context, req core.SweepRequest) ([]core.FileTask, error) {
	tasks, _, err := s.sweep(ctx, req, false)
	return tasks, err
}

// Plan returns the tasks Sweep would perform without performing them.
func (s *SweepService) Plan(ctx context.Context, req core.SweepRequest) ([]core.FileTask, error) {
	tasks, _, err := s.sweep(ctx, req, true)
	return tasks, err
}

// sweep also returns the source paths skipped under core.MissingSkip.
func (s *SweepService) sweep(ctx context.Context, req core.SweepRequest, dryRun bool) ([]core.FileTask, []string, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	var skipped []string
	tasks := make([]core.FileTask, 0, len(req.FileNames))
	for _, name := range req.FileNames {
		if err := ctx.Err(); err != nil {
			return tasks, skipped, err
		}

		task := req.Task(name)
		newer, err := s.checker.IsNewer(task.SourcePath, task.DestinationPath)
		if err != nil {
			if errors.Is(err, core.ErrMissingSource) && req.OnMissing == core.MissingSkip {
				skipped = append(skipped, task.SourcePath)
				if !dryRun {
					s.logger.Warn("skipping missing source", "source", task.SourcePath, "action", task.Action.Verb())
					s.cli.PrintWarning("missing %s, skipped", task.SourcePath)
				}
				continue
			}
			return tasks, skipped, err
		}

		if !newer {
			s.logger.Debug("destination up to date", "source", task.SourcePath, "destination", task.DestinationPath)
			continue
		}

		if !dryRun {
			if err := s.perform(ctx, task, req.Data); err != nil {
				return tasks, skipped, err
			}
			s.cli.PrintDiagnostic(task.Diagnostic())
		}
		tasks = append(tasks, task)
	}

	return tasks, skipped, nil
}

func (s *SweepService) perform(ctx context.Context, task core.FileTask, data map[string]any) error {
	switch task.Action {
	case core.ActionCopy:
		if err := s.fs.CopyFile(task.SourcePath, task.DestinationPath); err != nil {
			return &core.FileSystemError{Op: "copy", Path: task.SourcePath, Err: err}
		}
	case core.ActionRenderMarkdown:
		if s.markdown == nil {
			return &core.RenderError{Action: task.Action, Source: task.SourcePath, Err: fmt.Errorf("no markdown renderer configured")}
		}
		if err := s.markdown.RenderMarkdown(ctx, task.SourcePath, task.DestinationPath); err != nil {
			return &core.RenderError{Action: task.Action, Source: task.SourcePath, Err: err}
		}
	case core.ActionRenderTemplate:
		if s.template == nil {
			return &core.RenderError{Action: task.Action, Source: task.SourcePath, Err: fmt.Errorf("no template renderer configured")}
		}
		if err := s.template.RenderTemplate(ctx, task.SourcePath, task.DestinationPath, data); err != nil {
			return &core.RenderError{Action: task.Action, Source: task.SourcePath, Err: err}
		}
	default:
		return fmt.Errorf("%w: %d", core.ErrUnknownAction, int(task.Action))
	}
	return nil
}
