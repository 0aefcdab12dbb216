package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/3-lines-studio/sweep/internal/core"
	"github.com/3-lines-studio/sweep/internal/templates"
)

type ScaffoldInput struct {
	SiteDir  string
	Template string
}

type ScaffoldOutput struct {
	Files   []string
	Success bool
	Error   error
}

type ScaffoldService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewScaffoldService(fs FileSystem, cli CLIOutput) *ScaffoldService {
	return &ScaffoldService{
		fs:  fs,
		cli: cli,
	}
}

func (s *ScaffoldService) Scaffold(input ScaffoldInput) ScaffoldOutput {
	s.cli.PrintHeader("Sweep New")

	templateName := input.Template
	if templateName == "" {
		templateName = "sidebar"
	}

	if s.fs.FileExists(input.SiteDir) {
		entries, err := s.fs.ReadDir(input.SiteDir)
		if err != nil {
			return ScaffoldOutput{Error: fmt.Errorf("failed to read directory: %w", err)}
		}
		if len(entries) > 0 {
			return ScaffoldOutput{Error: fmt.Errorf("%w: %s", core.ErrDirectoryNotEmpty, input.SiteDir)}
		}
	}

	templateFS, err := templates.GetTemplate(templateName)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return ScaffoldOutput{Error: fmt.Errorf("invalid template '%s'", templateName)}
		}
		return ScaffoldOutput{Error: err}
	}

	if err := s.fs.MkdirAll(input.SiteDir, 0755); err != nil {
		return ScaffoldOutput{Error: fmt.Errorf("failed to create site directory: %w", err)}
	}

	data := templates.TemplateData{
		Name: templates.DeriveSiteName(input.SiteDir),
	}

	var created []string
	err = fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		targetPath, isTemplate := templates.ProcessFilename(path)
		targetPath = filepath.Join(input.SiteDir, targetPath)

		if err := s.fs.WriteFile(targetPath, templates.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		if isTemplate {
			s.cli.PrintFile(targetPath + " (generated)")
		} else {
			s.cli.PrintFile(targetPath)
		}
		created = append(created, targetPath)
		return nil
	})
	if err != nil {
		return ScaffoldOutput{Files: created, Error: err}
	}

	s.cli.PrintDone(fmt.Sprintf("Created %d files using '%s' template", len(created), templateName))
	return ScaffoldOutput{Files: created, Success: true}
}
