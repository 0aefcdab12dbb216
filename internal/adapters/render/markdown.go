package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/3-lines-studio/sweep/internal/adapters/fs"
)

type MarkdownRenderer struct {
	fs fs.FileSystem
	md goldmark.Markdown
}

func NewMarkdownRenderer(fs fs.FileSystem) *MarkdownRenderer {
	return &MarkdownRenderer{
		fs: fs,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// RenderMarkdown converts srcPath to HTML and writes it to dstPath.
func (r *MarkdownRenderer) RenderMarkdown(ctx context.Context, srcPath, dstPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source, err := r.fs.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}

	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return fmt.Errorf("failed to convert markdown: %w", err)
	}

	if err := r.fs.WriteFile(dstPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dstPath, err)
	}
	return nil
}
