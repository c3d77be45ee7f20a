// Package batch handles batch re-denomination of price lists
package batch

import (
	"fmt"

	"fjacquet/syp-convert/cmd/root"
	"fjacquet/syp-convert/internal/batch"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/validation"

	"github.com/spf13/cobra"
)

var (
	input  string
	output string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert price lists from old to new pounds",
	Long: `Batch convert CSV price lists from old to new pounds.

The input needs an "amount" column of old-pound amounts and may have an "item"
column. The output has item, old_amount and new_amount columns, converted the
same way as "convert old". When the input is a directory every .csv file in it
is converted into a file of the same name in the output directory.

Example:
  syp-convert batch -i prices.csv -o prices-new.csv
  syp-convert batch -i lists/ -o converted/`,
	Args: cobra.NoArgs,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Input CSV file or directory")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file or directory")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	opts := batch.Options{Delimiter: c.GetConfig().Delimiter()}
	logger := c.GetLogger().WithField(logging.FieldComponent, "batch")

	isDir, err := validation.BatchPaths(input, output)
	if err != nil {
		return err
	}

	if !isDir {
		count, err := batch.RedenominateFile(input, output, opts, logger)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d rows converted\n", count)
		return err
	}

	summary, err := batch.RedenominateDir(input, output, opts, logger)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d rows converted\n", summary.Files, summary.Rows); err != nil {
		return err
	}
	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d files could not be converted: %v", len(summary.Failed), summary.Failed)
	}
	return nil
}
