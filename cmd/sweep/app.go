package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"

	"github.com/3-lines-studio/sweep/internal/adapters/cli"
	"github.com/3-lines-studio/sweep/internal/adapters/config"
	"github.com/3-lines-studio/sweep/internal/adapters/env"
	"github.com/3-lines-studio/sweep/internal/adapters/fs"
	"github.com/3-lines-studio/sweep/internal/adapters/render"
	"github.com/3-lines-studio/sweep/internal/core"
	"github.com/3-lines-studio/sweep/internal/templates"
	"github.com/3-lines-studio/sweep/internal/usecase"
)

const version = "0.3.0"

type phaseOptions struct {
	Phase       core.Phase
	ConfigPath  string
	Destination string
	OnMissing   string
	Quiet       bool
	Plan        bool
	Components  []string
}

type deps struct {
	fs     fs.FileSystem
	output *cli.Output
	logger *slog.Logger
}

func newApp(ctx context.Context, output *cli.Output) *orpheus.App {
	overrides := env.Load()
	d := deps{
		fs:     fs.NewOSFileSystem(),
		output: output,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: overrides.LogLevel})),
	}

	app := orpheus.New("sweep").
		SetDescription("Copy and render site component files when their sources change").
		SetVersion(version)

	for _, phase := range core.Phases {
		app.AddCommand(phaseCommand(ctx, d, overrides, phase))
	}

	statusCmd := orpheus.NewCommand("status", "List files each phase would update").
		SetHandler(func(c *orpheus.Context) error {
			for _, phase := range core.Phases {
				opts := optionsFromContext(c, overrides, phase)
				opts.Plan = true
				if err := runPhase(ctx, d, opts); err != nil {
					return err
				}
			}
			return nil
		})
	addPhaseFlags(statusCmd)
	app.AddCommand(statusCmd)

	newCmd := orpheus.NewCommand("new", "Create a starter site in an empty directory").
		SetHandler(func(c *orpheus.Context) error {
			args := positionalArgs(c)
			if len(args) == 0 {
				return orpheus.ExecutionError("new", "missing site directory argument")
			}
			return runScaffold(d, args[0], c.GetFlagString("template"))
		}).
		AddFlag("template", "t", "sidebar", "Starter template ("+strings.Join(templates.Names(), ", ")+")")
	app.AddCommand(newCmd)

	return app
}

func phaseCommand(ctx context.Context, d deps, overrides env.Overrides, phase core.Phase) *orpheus.Command {
	cmd := orpheus.NewCommand(string(phase), "Run the "+string(phase)+" phase of every (or the named) component").
		SetHandler(func(c *orpheus.Context) error {
			return runPhase(ctx, d, optionsFromContext(c, overrides, phase))
		})
	addPhaseFlags(cmd)
	return cmd
}

func addPhaseFlags(cmd *orpheus.Command) {
	cmd.AddFlag("config", "c", "", "Site config file (default $SWEEP_CONFIG or site.yaml)").
		AddFlag("dest", "d", "", "Destination directory override").
		AddBoolFlag("skip-missing", "s", false, "Skip missing sources instead of failing").
		AddBoolFlag("quiet", "q", false, "Only print action lines and errors")
}

func optionsFromContext(c *orpheus.Context, overrides env.Overrides, phase core.Phase) phaseOptions {
	opts := phaseOptions{
		Phase:       phase,
		ConfigPath:  overrides.ConfigPath,
		Destination: overrides.DestinationDir,
		OnMissing:   overrides.OnMissing,
		Quiet:       c.GetFlagBool("quiet"),
		Components:  positionalArgs(c),
	}
	if path := c.GetFlagString("config"); path != "" {
		opts.ConfigPath = path
	}
	if dest := c.GetFlagString("dest"); dest != "" {
		opts.Destination = dest
	}
	if c.GetFlagBool("skip-missing") {
		opts.OnMissing = core.MissingSkip.String()
	}
	return opts
}

// positionalArgs drops flags and their values; c.Args is the raw argument list.
func positionalArgs(c *orpheus.Context) []string {
	if c.Flags == nil {
		return nil
	}
	return c.Flags.Args()
}

func runPhase(ctx context.Context, d deps, opts phaseOptions) error {
	command := string(opts.Phase)
	d.output.SetQuiet(opts.Quiet)

	site, err := config.NewLoader(d.fs).Load(opts.ConfigPath)
	if err != nil {
		return orpheus.ExecutionError(command, err.Error())
	}
	site, err = config.ApplyOverrides(site, opts.Destination, opts.OnMissing)
	if err != nil {
		return orpheus.ExecutionError(command, err.Error())
	}

	sweeper := usecase.NewSweepService(
		d.fs,
		render.NewMarkdownRenderer(d.fs),
		render.NewMustacheRenderer(d.fs),
		d.output,
		d.logger,
	)
	phases := usecase.NewPhaseService(sweeper)
	input := usecase.PhaseInput{
		Site:       site,
		Phase:      opts.Phase,
		Components: opts.Components,
	}

	if opts.Plan {
		return printPlan(d.output, phases.Plan(ctx, input))
	}

	d.output.PrintHeader("Sweep " + command)
	result := phases.Run(ctx, input)

	report := cli.NewRunReport(d.output, d.output.Writer(), "Sweep "+command, site.DestinationDir)
	fillReport(report, result)
	if !opts.Quiet || report.HasFailures() {
		report.Render()
	}

	if result.Error != nil {
		if errors.Is(result.Error, core.ErrUnknownComponent) {
			return orpheus.NotFoundError(command, result.Error.Error())
		}
		return orpheus.ExecutionError(command, result.Error.Error())
	}
	return nil
}

func fillReport(report *cli.RunReport, result usecase.PhaseOutput) {
	for _, step := range result.Steps {
		name := fmt.Sprintf("%s: %s", step.Component, step.Action.Verb())
		if step.Err != nil {
			report.AddStep(name, len(step.Tasks), false, step.Err.Error())
			report.AddError(step.Component, "Step failed", []string{step.Err.Error()})
			continue
		}
		report.AddStep(name, len(step.Tasks), true, "")
		if len(step.Skipped) > 0 {
			report.AddWarning(step.Component, "Missing sources skipped", step.Skipped)
		}
	}
	if result.Error != nil && len(result.Steps) == 0 {
		report.AddError(string(result.Phase), "Phase did not start", []string{result.Error.Error()})
	}
}

func printPlan(output *cli.Output, result usecase.PhaseOutput) error {
	if result.Error != nil {
		return orpheus.ExecutionError("status", result.Error.Error())
	}

	for _, source := range result.Skipped() {
		output.PrintWarning("%s: missing %s, would skip", result.Phase, source)
	}

	tasks := result.Tasks()
	if len(tasks) == 0 {
		output.PrintSuccess("%s: up to date", result.Phase)
		return nil
	}

	// Diagnostics print even in quiet mode.
	output.PrintStep("", "%s: %d stale", result.Phase, len(tasks))
	for _, task := range tasks {
		output.PrintDiagnostic(task.Diagnostic())
	}
	return nil
}

func runScaffold(d deps, siteDir, templateName string) error {
	result := usecase.NewScaffoldService(d.fs, d.output).Scaffold(usecase.ScaffoldInput{
		SiteDir:  siteDir,
		Template: templateName,
	})
	if result.Error != nil {
		return orpheus.ExecutionError("new", result.Error.Error())
	}

	fmt.Fprintln(d.output.Writer())
	d.output.PrintStep("", "Next steps:")
	d.output.PrintStep("", "cd %s", siteDir)
	d.output.PrintStep("", "sweep init && sweep build")
	return nil
}
