package core

import "fmt"

const DefaultDestinationDir = "_site"

// Step is one sweep declared by a component for a phase.
type Step struct {
	Action         Action
	FileNames      []string
	SourceDir      string
	DestinationDir string
}

type Component struct {
	Name           string
	SourceDir      string
	DestinationDir string
	Data           map[string]any
	Phases         map[Phase][]Step
}

func (c Component) Steps(phase Phase) []Step {
	return c.Phases[phase]
}

type Site struct {
	SourceDir      string
	DestinationDir string
	OnMissing      MissingPolicy
	Components     []Component
}

func (s Site) Component(name string) (Component, bool) {
	for _, c := range s.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

// Select returns the named components in declaration order, or every
// component when names is empty.
func (s Site) Select(names ...string) ([]Component, error) {
	if len(names) == 0 {
		return s.Components, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := s.Component(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}
		wanted[name] = true
	}

	selected := make([]Component, 0, len(wanted))
	for _, c := range s.Components {
		if wanted[c.Name] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

// Request resolves a component step into a sweep request. Directories fall
// back from the step to the component to the site.
func (s Site) Request(c Component, step Step) SweepRequest {
	return SweepRequest{
		SourceDir:      ResolveDir(step.SourceDir, c.SourceDir, s.SourceDir, DefaultSourceDir),
		DestinationDir: ResolveDir(step.DestinationDir, c.DestinationDir, s.DestinationDir, DefaultDestinationDir),
		FileNames:      step.FileNames,
		Action:         step.Action,
		OnMissing:      s.OnMissing,
		Data:           c.Data,
	}
}

func (s Site) Validate() error {
	seen := make(map[string]bool, len(s.Components))
	for i, c := range s.Components {
		if c.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("components[%d].name", i), Reason: "cannot be empty"}
		}
		if seen[c.Name] {
			return &ValidationError{Field: fmt.Sprintf("components[%d].name", i), Reason: fmt.Sprintf("duplicate component %q", c.Name)}
		}
		seen[c.Name] = true

		for _, phase := range Phases {
			for j, step := range c.Steps(phase) {
				if err := s.Request(c, step).Validate(); err != nil {
					return fmt.Errorf("component %s %s step %d: %w", c.Name, phase, j, err)
				}
			}
		}
	}
	return nil
}
