// Package batch re-denominates price lists: every old-unit amount of a CSV
// file is converted to new units with the same rules as the interactive
// converter.
package batch

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/syp-convert/internal/conversion"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// AmountColumn is the header of the column holding old-unit amounts.
const AmountColumn = "amount"

// InputRow is one line of a price list. Columns other than item and amount are ignored.
type InputRow struct {
	Item   string `csv:"item"`
	Amount string `csv:"amount"`
}

// OutputRow is one line of a re-denominated price list.
type OutputRow struct {
	Item      string `csv:"item"`
	OldAmount string `csv:"old_amount"`
	NewAmount string `csv:"new_amount"`
}

// Options controls CSV reading and writing.
type Options struct {
	Delimiter rune
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// Redenominate reads a price list from r and writes the converted list to w.
// It returns the number of rows written. name identifies the input in errors.
func Redenominate(r io.Reader, w io.Writer, name string, opts Options) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("error reading price list: %w", err)
	}

	if err := checkHeader(data, name, opts); err != nil {
		return 0, err
	}

	var rows []InputRow
	if err := gocsv.UnmarshalCSV(newReader(bytes.NewReader(data), opts), &rows); err != nil {
		return 0, fmt.Errorf("error parsing price list: %w", err)
	}

	out := make([]OutputRow, 0, len(rows))
	for _, row := range rows {
		amount := strings.TrimSpace(row.Amount)
		out = append(out, OutputRow{
			Item:      row.Item,
			OldAmount: amount,
			NewAmount: conversion.OldToNew(amount),
		})
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.delimiter()
	if err := gocsv.MarshalCSV(&out, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return 0, fmt.Errorf("error writing price list: %w", err)
	}
	return len(out), nil
}

// checkHeader rejects input whose header has no amount column.
func checkHeader(data []byte, name string, opts Options) error {
	header, err := newReader(bytes.NewReader(data), opts).Read()
	if err == io.EOF {
		return &parsererror.InvalidFormatError{
			FilePath:       name,
			ExpectedFormat: "CSV with an '" + AmountColumn + "' column",
			Msg:            "file is empty",
		}
	}
	if err != nil {
		return fmt.Errorf("error reading header: %w", err)
	}
	for _, col := range header {
		if strings.TrimSpace(col) == AmountColumn {
			return nil
		}
	}
	return &parsererror.InvalidFormatError{
		FilePath:       name,
		ExpectedFormat: "CSV with an '" + AmountColumn + "' column",
		Msg:            "missing " + AmountColumn + " column",
	}
}

func newReader(r io.Reader, opts Options) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = opts.delimiter()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// RedenominateFile converts the price list at inputPath into outputPath,
// creating the output directory when needed.
func RedenominateFile(inputPath, outputPath string, opts Options, logger logging.Logger) (int, error) {
	log := logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: inputPath},
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath},
	)
	log.Info("Re-denominating price list")

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("error opening price list: %w", err)
	}
	defer func() {
		if err := in.Close(); err != nil {
			log.WithError(err).Warn("Failed to close input file")
		}
	}()

	if err := os.MkdirAll(filepath.Dir(outputPath), 0750); err != nil {
		return 0, fmt.Errorf("error creating directory: %w", err)
	}

	var buf bytes.Buffer
	count, err := Redenominate(in, &buf, inputPath, opts)
	if err != nil {
		log.WithError(err).Error("Failed to re-denominate price list")
		return 0, err
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0600); err != nil {
		return 0, fmt.Errorf("error writing output file: %w", err)
	}

	log.Info("Price list re-denominated", logging.Field{Key: logging.FieldCount, Value: count})
	return count, nil
}
