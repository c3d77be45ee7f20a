// Package render draws a controller view as plain text.
package render

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/syp-convert/internal/app"
	"fjacquet/syp-convert/internal/locale"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// rlm is the right-to-left mark that makes a terminal lay a line out right to left.
const rlm = "\u200f"

// Theme colours of the light and dark layouts.
var (
	darkBackground  = lipgloss.Color("#111827")
	darkForeground  = lipgloss.Color("#ffffff")
	lightBackground = lipgloss.Color("#f3f4f6")
	lightForeground = lipgloss.Color("#1f2937")
)

// Options controls how a view is drawn.
type Options struct {
	// Color paints the view with the light or dark palette.
	Color bool
}

// Text writes v to w.
func Text(w io.Writer, v app.View, opts Options) error {
	r := &renderer{view: v}

	t := v.Text
	r.line(t.Title)
	r.line(fmt.Sprintf("[%s] [%s]", t.Lang, v.ThemeToggleLabel()))
	r.blank()
	r.line(field(t.Old, v.Amounts.Old))
	r.line(field(t.New, v.Amounts.New))
	r.line(t.Rule)
	r.blank()
	r.line("-- " + t.Mixed + " --")
	r.line(field(t.Total, v.Mixed.TotalNew))
	r.line(field(t.PayOld, v.Mixed.PaidOld))
	r.line("[" + t.Calc + "]")

	if v.ShowResult() {
		r.blank()
		r.line(t.Result + ":")
		r.line(v.Mixed.PaidOld + " " + t.Old)
		r.line(v.Mixed.RemainingNew + " " + t.New)
	}

	out := r.b.String()
	if opts.Color {
		out = palette(w, v.Preferences.DarkMode).Render(strings.TrimSuffix(out, "\n")) + "\n"
	}

	_, err := io.WriteString(w, out)
	return err
}

// palette returns the block style of the selected theme. Colours are always
// emitted: the caller asked for them, whatever the terminal reports.
func palette(w io.Writer, dark bool) lipgloss.Style {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.TrueColor)

	style := renderer.NewStyle().Padding(0, 1)
	if dark {
		return style.Background(darkBackground).Foreground(darkForeground)
	}
	return style.Background(lightBackground).Foreground(lightForeground)
}

func field(label, value string) string {
	return label + ": " + value
}

type renderer struct {
	b    strings.Builder
	view app.View
}

func (r *renderer) line(s string) {
	if r.view.Direction == locale.RightToLeft {
		r.b.WriteString(rlm)
	}
	r.b.WriteString(s)
	r.b.WriteByte('\n')
}

func (r *renderer) blank() {
	r.b.WriteByte('\n')
}
