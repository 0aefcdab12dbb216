package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type recordingOutput struct {
	diagnostics []string
	warnings    []string
	files       []string
}

func (o *recordingOutput) PrintHeader(msg string)                   {}
func (o *recordingOutput) PrintStep(emoji, msg string, args ...any) {}
func (o *recordingOutput) PrintSuccess(msg string, args ...any)     {}
func (o *recordingOutput) PrintError(msg string, args ...any)       {}
func (o *recordingOutput) PrintDone(msg string)                     {}
func (o *recordingOutput) PrintFile(path string)                    { o.files = append(o.files, path) }
func (o *recordingOutput) PrintDiagnostic(line string)              { o.diagnostics = append(o.diagnostics, line) }
func (o *recordingOutput) PrintWarning(msg string, args ...any) {
	o.warnings = append(o.warnings, fmt.Sprintf(msg, args...))
}

type renderCall struct {
	src, dst string
	data     map[string]any
}

// stubRenderer writes a marker file so staleness sees the destination.
type stubRenderer struct {
	calls []renderCall
	err   error
}

func (r *stubRenderer) RenderMarkdown(ctx context.Context, src, dst string) error {
	return r.render(src, dst, nil)
}

func (r *stubRenderer) RenderTemplate(ctx context.Context, src, dst string, data map[string]any) error {
	return r.render(src, dst, data)
}

func (r *stubRenderer) render(src, dst string, data map[string]any) error {
	r.calls = append(r.calls, renderCall{src: src, dst: dst, data: data})
	if r.err != nil {
		return r.err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, []byte("rendered "+filepath.Base(src)), 0644)
}

var (
	t1 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	t2 = t1.Add(time.Hour)
)

func writeFile(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}
