// Package mixed provides the mixed-payment command.
package mixed

import (
	"fmt"

	"fjacquet/syp-convert/cmd/root"
	"fjacquet/syp-convert/internal/logging"

	"github.com/spf13/cobra"
)

var (
	totalNew string
	paidOld  string
	details  bool
)

// Cmd represents the mixed command
var Cmd = &cobra.Command{
	Use:   "mixed",
	Short: "Work out what is left to pay in new pounds after paying part in old pounds",
	Long: `Work out what is left to pay, in new pounds, when part of a total given in
new pounds is paid with old pounds.

A remainder of zero or less prints 0. A total of 0 or one that is not a number
prints nothing. A paid amount that is not a number counts as nothing paid.

Examples:
  syp-convert mixed --total 10 --paid-old 500        # 5.00
  syp-convert mixed --total 10 --paid-old 500 --details`,
	Args: cobra.NoArgs,
	RunE: mixedFunc,
}

func init() {
	Cmd.Flags().StringVarP(&totalNew, "total", "t", "", "Total due in new pounds")
	Cmd.Flags().StringVarP(&paidOld, "paid-old", "p", "", "Amount paid in old pounds")
	Cmd.Flags().BoolVarP(&details, "details", "d", false, "Print the result block in the saved language")
}

func mixedFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	ctrl := c.NewController()
	ctrl.SetTotalNew(totalNew)
	ctrl.SetPaidOld(paidOld)
	if !ctrl.CalculateRemainder() {
		root.Log.Debug("Nothing to calculate, total is zero or not a number",
			logging.Field{Key: "total", Value: totalNew})
		return nil
	}

	out := cmd.OutOrStdout()
	view := ctrl.View()
	if details {
		_, err = fmt.Fprintf(out, "%s:\n%s %s\n%s %s\n",
			view.Text.Result, view.Mixed.PaidOld, view.Text.Old, view.Mixed.RemainingNew, view.Text.New)
	} else {
		_, err = fmt.Fprintln(out, view.Mixed.RemainingNew)
	}
	if err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
