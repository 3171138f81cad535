package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Kind names a report and its CSV file prefix.
type Kind string

const (
	KindScores     Kind = "scores"
	KindHighScores Kind = "high_scores"
	KindPayouts    Kind = "payouts"
)

// CSVFileName is the file a report kind is written to for a week range.
func CSVFileName(kind Kind, startWeek, endWeek int) string {
	return fmt.Sprintf("%s_weeks_%d_%d.csv", kind, startWeek, endWeek)
}

// WriteFile writes one whole file in a single pass. A failed render leaves
// whatever was written so far; the output is regenerable.
func WriteFile(path string, render func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := render(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
