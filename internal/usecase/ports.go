package usecase

import (
	"context"

	"github.com/3-lines-studio/sweep/internal/adapters/fs"
)

type MarkdownRenderer interface {
	RenderMarkdown(ctx context.Context, srcPath, dstPath string) error
}

type TemplateRenderer interface {
	RenderTemplate(ctx context.Context, srcPath, dstPath string, data map[string]any) error
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDiagnostic(line string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
