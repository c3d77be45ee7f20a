// Package validation checks user-supplied paths before any file is written.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputPath checks that path exists and is a regular file or a directory, and
// reports which.
func InputPath(path string) (isDir bool, err error) {
	if path == "" {
		return false, fmt.Errorf("input path is required")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return false, fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return false, fmt.Errorf("path %s is neither a file nor a directory", path)
	}
	return info.IsDir(), nil
}

// BatchPaths checks an input/output pair for a batch run: the input must be
// valid, the output must differ from it, and an existing output must be of
// the same kind as the input.
func BatchPaths(input, output string) (isDir bool, err error) {
	isDir, err = InputPath(input)
	if err != nil {
		return false, err
	}
	if output == "" {
		return false, fmt.Errorf("output path is required")
	}

	in, err := filepath.Abs(input)
	if err != nil {
		return false, fmt.Errorf("error resolving path %s: %w", input, err)
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return false, fmt.Errorf("error resolving path %s: %w", output, err)
	}
	if in == out {
		return false, fmt.Errorf("output %s would overwrite the input", output)
	}

	info, err := os.Stat(output)
	switch {
	case os.IsNotExist(err):
		return isDir, nil
	case err != nil:
		return false, fmt.Errorf("error checking path %s: %w", output, err)
	case isDir && !info.IsDir():
		return false, fmt.Errorf("output %s must be a directory when the input is a directory", output)
	case !isDir && info.IsDir():
		return false, fmt.Errorf("output %s is a directory, expected a file", output)
	}
	return isDir, nil
}
