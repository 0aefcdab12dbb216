package cli

import (
	"fmt"
	"io"
	"time"
)

type ReportStep struct {
	Name    string
	Files   int
	Success bool
	Error   string
}

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type ReportIssue struct {
	Component string
	Message   string
	Details   []string
}

type RunReport struct {
	colors      cliOutputWithColors
	out         io.Writer
	title       string
	steps       []ReportStep
	warnings    []ReportIssue
	errors      []ReportIssue
	startTime   time.Time
	outputDir   string
	hasFailures bool
}

func NewRunReport(colors cliOutputWithColors, out io.Writer, title, outputDir string) *RunReport {
	return &RunReport{
		colors:    colors,
		out:       out,
		title:     title,
		steps:     make([]ReportStep, 0),
		warnings:  make([]ReportIssue, 0),
		errors:    make([]ReportIssue, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *RunReport) AddStep(name string, files int, success bool, err string) {
	r.steps = append(r.steps, ReportStep{
		Name:    name,
		Files:   files,
		Success: success,
		Error:   err,
	})
	if !success {
		r.hasFailures = true
	}
}

func (r *RunReport) AddWarning(component string, message string, details []string) {
	r.warnings = append(r.warnings, ReportIssue{
		Component: component,
		Message:   message,
		Details:   details,
	})
}

func (r *RunReport) AddError(component string, message string, details []string) {
	r.errors = append(r.errors, ReportIssue{
		Component: component,
		Message:   message,
		Details:   details,
	})
	r.hasFailures = true
}

func (r *RunReport) Render() {
	r.RenderElapsed(time.Since(r.startTime))
}

func (r *RunReport) RenderElapsed(duration time.Duration) {
	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *RunReport) fileCount() int {
	total := 0
	for _, step := range r.steps {
		total += step.Files
	}
	return total
}

func (r *RunReport) renderMinimal(duration time.Duration) {
	fmt.Fprintf(r.out, "  "+r.colors.Green("✓ ")+"%d files updated in %d steps\n", r.fileCount(), len(r.steps))

	var failed []string
	for _, step := range r.steps {
		if !step.Success {
			failed = append(failed, "  "+r.colors.Red("✗ ")+step.Name)
		}
	}

	if len(failed) == 0 {
		fmt.Fprintf(r.out, "  "+r.colors.Green("✓ ")+"%s complete in %s\n", r.title, formatDuration(duration))
	} else {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Failed steps:")
		for _, line := range failed {
			fmt.Fprintln(r.out, line)
		}
	}

	if r.outputDir != "" {
		fmt.Fprintf(r.out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *RunReport) renderVerbose(duration time.Duration) {
	fmt.Fprintf(r.out, "  %d files updated in %d steps\n", r.fileCount(), len(r.steps))

	fmt.Fprintln(r.out)
	for _, step := range r.steps {
		status := r.colors.Green("✓")
		if !step.Success {
			status = r.colors.Red("✗")
		}
		fmt.Fprintf(r.out, "  %s %s (%d)\n", status, step.Name, step.Files)
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  "+r.colors.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderIssues(r.errors, r.colors.Red("✗"))
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "  "+r.colors.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderIssues(r.warnings, r.colors.Yellow("⚠"))
	}

	fmt.Fprintln(r.out)
	if len(r.errors) > 0 {
		fmt.Fprintf(r.out, "  %s\n", r.colors.Red(fmt.Sprintf("%s failed after %s", r.title, formatDuration(duration))))
	} else {
		fmt.Fprintf(r.out, "  "+r.colors.Green("✓ ")+"%s complete in %s\n", r.title, formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(r.out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *RunReport) renderIssues(issues []ReportIssue, marker string) {
	for _, issue := range issues {
		fmt.Fprintf(r.out, "  %s %s\n", marker, issue.Component)
		fmt.Fprintf(r.out, "    %s\n", issue.Message)

		for _, detail := range deduplicateStrings(issue.Details) {
			fmt.Fprintf(r.out, "      • %s\n", detail)
		}
	}
}

func (r *RunReport) HasFailures() bool {
	return r.hasFailures
}

func (r *RunReport) HasWarnings() bool {
	return len(r.warnings) > 0
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings keeps first-seen order and annotates repeats.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if counts[item] > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, counts[item]))
		} else {
			result = append(result, item)
		}
	}
	return result
}
