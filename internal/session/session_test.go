package session

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"fjacquet/syp-convert/internal/app"
	"fjacquet/syp-convert/internal/kvstore"
	"fjacquet/syp-convert/internal/locale"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/preferences"
	"fjacquet/syp-convert/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*Session, *app.Controller, *strings.Builder, *kvstore.MemoryStore) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	logger := logging.NewMockLogger()
	ctrl := app.NewController(preferences.NewStore(kv, "", logger), logger)
	out := &strings.Builder{}
	return New(ctrl, out, render.Options{}, logger), ctrl, out, kv
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line    string
		command string
		text    string
	}{
		{"old 100", "old", "100"},
		{"  OLD 100", "old", "100"},
		{"old", "old", ""},
		{"old  12 ", "old", " 12 "},
		{"calc\r", "calc", ""},
		{"old\t5", "old", "5"},
		{"paid\t\t7", "paid", "\t7"},
		{"\tTOTAL 10\r", "total", "10"},
		{"", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			command, text := split(tc.line)
			assert.Equal(t, tc.command, command)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestRun_Conversation(t *testing.T) {
	s, ctrl, out, kv := newSession(t)

	input := strings.Join([]string{
		"lang",
		"old 100",
		"total 10",
		"paid 500",
		"calc",
		"dark",
		"quit",
		"old 999",
	}, "\n")

	events, err := s.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 7, events, "lines after quit are not read")

	assert.Equal(t, app.AmountPair{Old: "100", New: "1.00"}, ctrl.Amounts())
	assert.Equal(t, "5.00", ctrl.Mixed().RemainingNew)
	assert.Equal(t, preferences.Preferences{Language: locale.English, DarkMode: true}, ctrl.Preferences())
	assert.Equal(t, 2, kv.Writes)

	rendered := out.String()
	assert.Contains(t, rendered, "Old SYP: 100\n")
	assert.Contains(t, rendered, "Pay:\n500 Old SYP\n5.00 New SYP\n")
	assert.Contains(t, rendered, "[Light Mode]")
}

func TestHandle_EmptyTotalKeepsResult(t *testing.T) {
	s, ctrl, _, _ := newSession(t)

	for _, line := range []string{"total 10", "paid 500", "calc", "total", "calc"} {
		_, err := s.Handle(line)
		require.NoError(t, err)
	}
	assert.Equal(t, "5.00", ctrl.Mixed().RemainingNew)
	assert.Equal(t, "", ctrl.Mixed().TotalNew)
}

func TestHandle_HelpAndUnknown(t *testing.T) {
	s, _, out, _ := newSession(t)

	done, err := s.Handle("help")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, out.String(), "calc            calculate what is left to pay")

	out.Reset()
	_, err = s.Handle("convert 5")
	require.NoError(t, err)
	assert.Equal(t, "unknown command \"convert\", type help\n", out.String())
}

func TestHandle_BlankLineDoesNothing(t *testing.T) {
	s, _, out, _ := newSession(t)
	done, err := s.Handle("   ")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Empty(t, out.String())
}

func TestRun_Cancelled(t *testing.T) {
	s, _, _, _ := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events, err := s.Run(ctx, strings.NewReader("old 1\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, events)
}

func TestRun_TabSeparatedCommand(t *testing.T) {
	s, ctrl, _, _ := newSession(t)

	_, err := s.Run(context.Background(), strings.NewReader("old\t2500\nquit\n"))
	require.NoError(t, err)
	assert.Equal(t, app.AmountPair{Old: "2500", New: "25.00"}, ctrl.Amounts())
}

func TestRun_CancelledWhileWaitingForInput(t *testing.T) {
	s, _, _, _ := newSession(t)
	in, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		_, err := s.Run(ctx, in)
		result <- err
	}()

	cancel()
	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("session kept waiting for input after cancellation")
	}
}
