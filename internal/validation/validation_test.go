package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prices.csv")
	require.NoError(t, os.WriteFile(file, []byte("item,amount\n"), 0600))

	isDir, err := InputPath(file)
	require.NoError(t, err)
	assert.False(t, isDir)

	isDir, err = InputPath(dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	_, err = InputPath(filepath.Join(dir, "missing.csv"))
	assert.ErrorContains(t, err, "path does not exist")

	_, err = InputPath("")
	assert.ErrorContains(t, err, "input path is required")
}

func TestBatchPaths(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "prices.csv")
	require.NoError(t, os.WriteFile(file, []byte("item,amount\n"), 0600))
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0750))
	otherFile := filepath.Join(dir, "other.csv")
	require.NoError(t, os.WriteFile(otherFile, nil, 0600))

	tests := []struct {
		name      string
		input     string
		output    string
		expectDir bool
		expectErr string
	}{
		{"file to new file", file, filepath.Join(dir, "new.csv"), false, ""},
		{"file to existing file", file, otherFile, false, ""},
		{"directory to directory", dir, outDir, true, ""},
		{"directory to new directory", dir, filepath.Join(dir, "fresh"), true, ""},
		{"same path", file, file, false, "would overwrite the input"},
		{"file to directory", file, outDir, false, "is a directory"},
		{"directory to file", dir, otherFile, false, "must be a directory"},
		{"missing output", file, "", false, "output path is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isDir, err := BatchPaths(tc.input, tc.output)
			if tc.expectErr != "" {
				assert.ErrorContains(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectDir, isDir)
		})
	}
}
