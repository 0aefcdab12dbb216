package cli

import (
	"fmt"
	"io"
	"os"
)

type Output struct {
	enableColors bool
	quiet        bool
	stdout       io.Writer
	stderr       io.Writer
}

func NewOutput() *Output {
	return &Output{
		enableColors: isTerminal(),
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// NewWriterOutput prints to the given writers without colours.
func NewWriterOutput(stdout, stderr io.Writer) *Output {
	return &Output{
		stdout: stdout,
		stderr: stderr,
	}
}

// SetQuiet suppresses everything except diagnostics and errors.
func (o *Output) SetQuiet(quiet bool) {
	o.quiet = quiet
}

func (o *Output) Green(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[32m" + text + "\033[0m"
}

func (o *Output) Yellow(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[33m" + text + "\033[0m"
}

func (o *Output) Red(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[31m" + text + "\033[0m"
}

func (o *Output) Gray(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[90m" + text + "\033[0m"
}

func (o *Output) Writer() io.Writer {
	return o.stdout
}

func (o *Output) PrintHeader(msg string) {
	if o.quiet {
		return
	}
	fmt.Fprintln(o.stdout, msg)
	fmt.Fprintln(o.stdout)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.stdout, "  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	if o.quiet {
		return
	}
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stdout, "  "+o.Green("✓ ")+"%s\n", formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stderr, "  "+o.Yellow("⚠ ")+"%s\n", formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(o.stderr, "  "+o.Red("✗ ")+"%s\n", formatted)
}

func (o *Output) PrintFile(path string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.stdout, "    %s\n", path)
}

// PrintDiagnostic prints one action line verbatim.
func (o *Output) PrintDiagnostic(line string) {
	fmt.Fprintln(o.stdout, line)
}

func (o *Output) PrintDone(msg string) {
	if o.quiet {
		return
	}
	fmt.Fprintln(o.stdout, msg)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
