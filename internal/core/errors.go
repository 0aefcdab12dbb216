package core

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSource     = errors.New("source file does not exist")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownComponent  = errors.New("unknown component")
	ErrDirectoryNotEmpty = errors.New("directory is not empty")
)

type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Path, ErrMissingSource)
}

func (e *MissingSourceError) Is(target error) bool {
	return target == ErrMissingSource
}

type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

type RenderError struct {
	Action Action
	Source string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s render of %s failed: %v", e.Action.Verb(), e.Source, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
