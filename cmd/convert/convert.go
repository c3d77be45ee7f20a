// Package convert provides the convert command and its old/new subcommands.
package convert

import (
	"fmt"

	"fjacquet/syp-convert/cmd/root"
	"fjacquet/syp-convert/internal/app"
	"fjacquet/syp-convert/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an amount between old and new Syrian pounds",
	Long: `Convert an amount between old and new Syrian pounds.

Old to new divides by 100 and shows two decimals. New to old multiplies by 100.
Text that is not a number converts to NaN. Put "--" before a negative amount.

Examples:
  syp-convert convert old 12345     # 123.45
  syp-convert convert new 2.5       # 250
  syp-convert convert old -- -250   # -2.50`,
}

var oldCmd = &cobra.Command{
	Use:   "old [amount]",
	Short: "Convert old pounds to new pounds",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, (*app.Controller).EditOld, func(a app.AmountPair) string { return a.New })
	},
}

var newCmd = &cobra.Command{
	Use:   "new [amount]",
	Short: "Convert new pounds to old pounds",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, (*app.Controller).EditNew, func(a app.AmountPair) string { return a.Old })
	},
}

func init() {
	Cmd.AddCommand(oldCmd, newCmd)
}

func run(cmd *cobra.Command, args []string, edit func(*app.Controller, string), result func(app.AmountPair) string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	amount := ""
	if len(args) == 1 {
		amount = args[0]
	}

	ctrl := c.NewController()
	edit(ctrl, amount)
	converted := result(ctrl.Amounts())

	root.Log.Debug("Amount converted",
		logging.Field{Key: logging.FieldOperation, Value: cmd.Name()},
		logging.Field{Key: "input", Value: amount},
		logging.Field{Key: "result", Value: converted})

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), converted); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
