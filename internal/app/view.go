package app

import (
	"fjacquet/syp-convert/internal/locale"
	"fjacquet/syp-convert/internal/preferences"
)

// View is an immutable snapshot of everything a display surface needs.
type View struct {
	Amounts     AmountPair
	Mixed       MixedPayment
	Preferences preferences.Preferences
	Text        locale.Translation
	Direction   locale.Direction
}

// ShowResult reports whether the mixed-payment result should be displayed.
func (v View) ShowResult() bool {
	return v.Mixed.RemainingNew != ""
}

// ThemeToggleLabel is the label of the dark-mode toggle.
func (v View) ThemeToggleLabel() string {
	return v.Text.ThemeLabel(v.Preferences.DarkMode)
}

// View returns a snapshot of the current state.
func (c *Controller) View() View {
	return View{
		Amounts:     c.amounts,
		Mixed:       c.mixed,
		Preferences: c.prefs,
		Text:        c.prefs.Language.Translation(),
		Direction:   c.prefs.Language.Direction(),
	}
}
