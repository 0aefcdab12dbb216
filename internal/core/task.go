package core

import "path/filepath"

const DefaultSourceDir = "."

// FileTask is one action performed (or planned) by a sweep.
type FileTask struct {
	SourcePath      string
	DestinationPath string
	Action          Action
}

func (t FileTask) Diagnostic() string {
	return FormatDiagnostic(t.Action, t.SourcePath, t.DestinationPath)
}

type SweepRequest struct {
	SourceDir      string
	DestinationDir string
	FileNames      []string
	Action         Action
	OnMissing      MissingPolicy
	Data           map[string]any
}

func (r SweepRequest) Validate() error {
	if r.DestinationDir == "" {
		return &ValidationError{Field: "destination_dir", Reason: "cannot be empty"}
	}
	if !r.Action.Valid() {
		return &ValidationError{Field: "action", Reason: "must be copy, markdown or mustache"}
	}
	for _, name := range r.FileNames {
		if err := ValidateFileName(name); err != nil {
			return &ValidationError{Field: "file_names", Reason: err.Error()}
		}
	}
	return nil
}

func (r SweepRequest) EffectiveSourceDir() string {
	if r.SourceDir == "" {
		return DefaultSourceDir
	}
	return r.SourceDir
}

// Task joins name onto both directories. filepath.Join cleans the result, so
// "./a.txt" is reported as "a.txt".
func (r SweepRequest) Task(name string) FileTask {
	return FileTask{
		SourcePath:      filepath.Join(r.EffectiveSourceDir(), name),
		DestinationPath: filepath.Join(r.DestinationDir, name),
		Action:          r.Action,
	}
}

func (r SweepRequest) Tasks() []FileTask {
	tasks := make([]FileTask, 0, len(r.FileNames))
	for _, name := range r.FileNames {
		tasks = append(tasks, r.Task(name))
	}
	return tasks
}
