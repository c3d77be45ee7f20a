// Package interactive provides the interactive converter session.
package interactive

import (
	"context"
	"errors"

	"fjacquet/syp-convert/cmd/root"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/session"

	"github.com/spf13/cobra"
)

// Cmd represents the interactive command
var Cmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "repl"},
	Short:   "Use the converter interactively, one command per line",
	Long: `Use the converter interactively. Each line is one command and the
converter is shown again after every change. Language and dark mode changes
are saved as they happen.

Commands:
  old <amount>    convert old pounds to new pounds
  new <amount>    convert new pounds to old pounds
  total <amount>  set the total due (new pounds)
  paid <amount>   set the amount paid in old pounds
  calc            calculate what is left to pay
  lang            switch language
  dark            switch dark mode
  show            show the converter
  quit            leave`,
	Args: cobra.NoArgs,
	RunE: interactiveFunc,
}

func interactiveFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	s := session.New(c.NewController(), cmd.OutOrStdout(), root.RenderOptions(), c.GetLogger())
	events, err := s.Run(cmd.Context(), cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		root.Log.Debug("Interactive session interrupted", logging.Field{Key: logging.FieldCount, Value: events})
		return nil
	}
	if err != nil {
		return err
	}

	root.Log.Debug("Interactive session finished", logging.Field{Key: logging.FieldCount, Value: events})
	return nil
}
