package prefs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/syp-convert/cmd/prefs"
	"fjacquet/syp-convert/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	root.Cmd.AddCommand(prefs.Cmd)
	os.Exit(m.Run())
}

func execute(t *testing.T, storage, path string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&errOut)
	root.Cmd.SetArgs(append([]string{"--storage", storage, "--storage-path", path, "--log-level", "error", "prefs"}, args...))
	t.Cleanup(func() { root.Cmd.SetArgs(nil) })

	err := root.Cmd.Execute()
	return out.String(), err
}

func TestPrefsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "prefs", prefs.Cmd.Use)
	assert.Len(t, prefs.Cmd.Commands(), 3)
}

func TestPrefsCommand_PersistsAcrossRuns(t *testing.T) {
	for _, storage := range []string{"file", "sqlite"} {
		t.Run(storage, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "prefs-store")

			out, err := execute(t, storage, path)
			require.NoError(t, err)
			assert.Equal(t, "language: ar\ndark: false\n", out)

			out, err = execute(t, storage, path, "toggle-lang")
			require.NoError(t, err)
			assert.Equal(t, "language: en\ndark: false\n", out)

			out, err = execute(t, storage, path, "toggle-dark")
			require.NoError(t, err)
			assert.Equal(t, "language: en\ndark: true\n", out)

			out, err = execute(t, storage, path)
			require.NoError(t, err)
			assert.Equal(t, "language: en\ndark: true\n", out)
		})
	}
}

func TestPrefsCommand_SetLang(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	out, err := execute(t, "file", path, "set-lang", "en-GB")
	require.NoError(t, err)
	assert.Equal(t, "language: en\ndark: false\n", out)

	out, err = execute(t, "file", path, "set-lang", "ar-SY")
	require.NoError(t, err)
	assert.Equal(t, "language: ar\ndark: false\n", out)
}

func TestPrefsCommand_SetLangUnsupported(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	_, err := execute(t, "file", path, "set-lang", "ja")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing is saved for a rejected language")
}
