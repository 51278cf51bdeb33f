package gantt

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// GenerationError wraps a failure in one stage of chart generation.
type GenerationError struct {
	// Path is the input file.
	Path string
	// Stage is the pipeline stage that failed: "load", "schema",
	// "tasks", "theme", or "layout".
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("chart generation failed for %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func stageError(path, stage string, err error) *GenerationError {
	return &GenerationError{Path: path, Stage: stage, Err: err}
}
