// Package prefs provides commands to show and change the saved preferences.
package prefs

import (
	"fmt"
	"io"

	"fjacquet/syp-convert/cmd/root"
	"fjacquet/syp-convert/internal/app"
	"fjacquet/syp-convert/internal/locale"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/preferences"

	"github.com/spf13/cobra"
)

// Cmd represents the prefs command
var Cmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the saved language and dark mode",
	Long: `Show or change the saved language and dark mode.

Without a subcommand the saved preferences are printed. Every change is saved
immediately to the configured storage.

Examples:
  syp-convert prefs
  syp-convert prefs toggle-lang
  syp-convert prefs set-lang en-GB`,
	Args: cobra.NoArgs,
	RunE: withController(func(ctrl *app.Controller, args []string) error { return nil }),
}

var toggleLangCmd = &cobra.Command{
	Use:   "toggle-lang",
	Short: "Switch between Arabic and English",
	Args:  cobra.NoArgs,
	RunE: withController(func(ctrl *app.Controller, args []string) error {
		ctrl.ToggleLanguage()
		return nil
	}),
}

var toggleDarkCmd = &cobra.Command{
	Use:   "toggle-dark",
	Short: "Switch dark mode on or off",
	Args:  cobra.NoArgs,
	RunE: withController(func(ctrl *app.Controller, args []string) error {
		ctrl.ToggleDarkMode()
		return nil
	}),
}

var setLangCmd = &cobra.Command{
	Use:   "set-lang <tag>",
	Short: "Choose the language from a language tag such as ar-SY or en",
	Args:  cobra.ExactArgs(1),
	RunE: withController(func(ctrl *app.Controller, args []string) error {
		lang, ok := locale.Parse(args[0])
		if !ok {
			return fmt.Errorf("unsupported language %q: choose Arabic or English", args[0])
		}
		ctrl.SetLanguage(lang)
		return nil
	}),
}

func init() {
	Cmd.AddCommand(toggleLangCmd, toggleDarkCmd, setLangCmd)
}

// withController runs fn against a controller loaded from storage and prints
// the resulting preferences.
func withController(fn func(ctrl *app.Controller, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := root.Container()
		if err != nil {
			return err
		}

		ctrl := c.NewController()
		if err := fn(ctrl, args); err != nil {
			return err
		}

		p := ctrl.Preferences()
		root.Log.Debug("Preferences",
			logging.Field{Key: logging.FieldOperation, Value: cmd.Name()},
			logging.Field{Key: logging.FieldLanguage, Value: p.Language},
			logging.Field{Key: logging.FieldDarkMode, Value: p.DarkMode})

		if err := printPreferences(cmd.OutOrStdout(), p); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		return nil
	}
}

func printPreferences(w io.Writer, p preferences.Preferences) error {
	_, err := fmt.Fprintf(w, "language: %s\ndark: %t\n", p.Language, p.DarkMode)
	return err
}
