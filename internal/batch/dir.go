package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/syp-convert/internal/logging"
)

// Summary reports the outcome of a directory run.
type Summary struct {
	Files  int
	Rows   int
	Failed []string
}

// RedenominateDir converts every .csv file of inputDir into a file of the same
// name in outputDir. A file that cannot be converted is logged and recorded in
// Summary.Failed; the remaining files are still processed.
func RedenominateDir(inputDir, outputDir string, opts Options, logger logging.Logger) (Summary, error) {
	var summary Summary

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return summary, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		logger.Warn("No CSV files found in input directory", logging.Field{Key: logging.FieldPath, Value: inputDir})
		return summary, nil
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return summary, fmt.Errorf("error creating directory: %w", err)
	}

	for _, name := range files {
		rows, err := RedenominateFile(filepath.Join(inputDir, name), filepath.Join(outputDir, name), opts, logger)
		if err != nil {
			summary.Failed = append(summary.Failed, name)
			continue
		}
		summary.Files++
		summary.Rows += rows
	}

	logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: summary.Files},
		logging.Field{Key: logging.FieldStatus, Value: fmt.Sprintf("%d failed", len(summary.Failed))})
	return summary, nil
}
