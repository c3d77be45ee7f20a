package convert_test

import (
	"bytes"
	"os"
	"testing"

	"fjacquet/syp-convert/cmd/convert"
	"fjacquet/syp-convert/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Init()
	root.Cmd.AddCommand(convert.Cmd)
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&errOut)
	root.Cmd.SetArgs(append([]string{"--storage", "memory", "--log-level", "error"}, args...))
	t.Cleanup(func() { root.Cmd.SetArgs(nil) })

	err := root.Cmd.Execute()
	return out.String(), err
}

func TestConvertCommand_Metadata(t *testing.T) {
	assert.Equal(t, "convert", convert.Cmd.Use)
	assert.Len(t, convert.Cmd.Commands(), 2)
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"old to new", []string{"convert", "old", "12345"}, "123.45\n"},
		{"new to old", []string{"convert", "new", "2.5"}, "250\n"},
		{"negative after separator", []string{"convert", "old", "--", "-250"}, "-2.50\n"},
		{"not a number", []string{"convert", "new", "abc"}, "NaN\n"},
		{"no amount", []string{"convert", "old"}, "\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestConvertCommand_TooManyArgs(t *testing.T) {
	_, err := execute(t, "convert", "old", "1", "2")
	assert.Error(t, err)
}
