package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/sweep/internal/adapters/fs"
	"github.com/3-lines-studio/sweep/internal/core"
)

type siteFile struct {
	SourceDir      string          `yaml:"source_dir"`
	DestinationDir string          `yaml:"destination_dir"`
	OnMissing      string          `yaml:"on_missing"`
	Components     []componentFile `yaml:"components"`
}

type componentFile struct {
	Name           string         `yaml:"name"`
	SourceDir      string         `yaml:"source_dir"`
	DestinationDir string         `yaml:"destination_dir"`
	Data           map[string]any `yaml:"data"`
	Init           []stepFile     `yaml:"init"`
	Build          []stepFile     `yaml:"build"`
	Publish        []stepFile     `yaml:"publish"`
}

type stepFile struct {
	Action         string   `yaml:"action"`
	Files          []string `yaml:"files"`
	SourceDir      string   `yaml:"source_dir"`
	DestinationDir string   `yaml:"destination_dir"`
}

type Loader struct {
	fs fs.FileSystem
}

func NewLoader(fs fs.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads a site definition. Relative directories are resolved against
// the directory holding the config file.
func (l *Loader) Load(path string) (core.Site, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return core.Site{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	site, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return core.Site{}, fmt.Errorf("config %s: %w", path, err)
	}
	return site, nil
}

func Parse(data []byte, baseDir string) (core.Site, error) {
	var file siteFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return core.Site{}, fmt.Errorf("failed to decode: %w", err)
	}

	onMissing, err := core.ParseMissingPolicy(file.OnMissing)
	if err != nil {
		return core.Site{}, err
	}

	site := core.Site{
		SourceDir:      resolve(baseDir, core.ResolveDir(file.SourceDir, core.DefaultSourceDir)),
		DestinationDir: resolve(baseDir, core.ResolveDir(file.DestinationDir, core.DefaultDestinationDir)),
		OnMissing:      onMissing,
	}

	for _, cf := range file.Components {
		component := core.Component{
			Name:           cf.Name,
			SourceDir:      resolve(baseDir, cf.SourceDir),
			DestinationDir: resolve(baseDir, cf.DestinationDir),
			Data:           cf.Data,
			Phases:         make(map[core.Phase][]core.Step),
		}

		declared := map[core.Phase][]stepFile{
			core.PhaseInit:    cf.Init,
			core.PhaseBuild:   cf.Build,
			core.PhasePublish: cf.Publish,
		}
		for _, phase := range core.Phases {
			for i, sf := range declared[phase] {
				action, err := core.ParseAction(sf.Action)
				if err != nil {
					return core.Site{}, fmt.Errorf("component %s %s step %d: %w", cf.Name, phase, i, err)
				}
				component.Phases[phase] = append(component.Phases[phase], core.Step{
					Action:         action,
					FileNames:      sf.Files,
					SourceDir:      resolve(baseDir, sf.SourceDir),
					DestinationDir: resolve(baseDir, sf.DestinationDir),
				})
			}
		}

		site.Components = append(site.Components, component)
	}

	if err := site.Validate(); err != nil {
		return core.Site{}, err
	}
	return site, nil
}

func resolve(baseDir, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}

// ApplyOverrides layers environment and flag values over a loaded site.
func ApplyOverrides(site core.Site, destinationDir, onMissing string) (core.Site, error) {
	if destinationDir != "" {
		site.DestinationDir = destinationDir
	}
	if onMissing != "" {
		policy, err := core.ParseMissingPolicy(onMissing)
		if err != nil {
			return site, err
		}
		site.OnMissing = policy
	}
	return site, nil
}
