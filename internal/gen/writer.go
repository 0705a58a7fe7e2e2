package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GenerationError reports an output-boundary failure: the target directory
// cannot be created or the file cannot be written. Always fatal; a
// partially generated config module is worse than none.
type GenerationError struct {
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("writing generated code to %s: %v", e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// WriteFile writes the generated source to path, creating parent
// directories if absent. The file is fully overwritten, never appended to
// or merged: generated code is a disposable, derived artifact.
func WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &GenerationError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return &GenerationError{Path: path, Err: err}
	}

	return nil
}
