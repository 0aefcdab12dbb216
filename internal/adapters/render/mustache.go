package render

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/cbroglie/mustache"

	"github.com/3-lines-studio/sweep/internal/adapters/fs"
)

type MustacheRenderer struct {
	fs fs.FileSystem
}

func NewMustacheRenderer(fs fs.FileSystem) *MustacheRenderer {
	return &MustacheRenderer{fs: fs}
}

// RenderTemplate renders the mustache template at srcPath with data. Partials
// are looked up next to the template.
func (r *MustacheRenderer) RenderTemplate(ctx context.Context, srcPath, dstPath string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source, err := r.fs.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	partials := &partialProvider{fs: r.fs, dir: filepath.Dir(srcPath)}
	tmpl, err := mustache.ParseStringPartials(string(source), partials)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	rendered, err := tmpl.Render(data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	if err := r.fs.WriteFile(dstPath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dstPath, err)
	}
	return nil
}

type partialProvider struct {
	fs  fs.FileSystem
	dir string
}

func (p *partialProvider) Get(name string) (string, error) {
	for _, candidate := range []string{name + ".mustache", name} {
		content, err := p.fs.ReadFile(filepath.Join(p.dir, candidate))
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, iofs.ErrNotExist) {
			return "", err
		}
	}
	return "", nil
}
