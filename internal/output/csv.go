/*
PURPOSE:
  Writes rejected candidates to a CSV report.
  Lets an operator find and hand-repair objects the extractor skipped.

REQUIREMENTS:
  User-specified:
  - Optional; only written when a rejects file is configured.

  Implementation-discovered:
  - Header row is always written, so an empty report still says "nothing rejected".

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (Migrate)
  - Consumes: internal/model.Rejection

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).

USAGE:
  w, err := output.NewCSVWriter("rejects.csv")
  w.Write(rejection)
  w.Close()

MAINTENANCE:
  - Update Write() mapping when Rejection struct changes.
*/

package output

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"

	"github.com/daryltucker/migrate-to-jsonl/internal/model"
)

// CSVWriter handles writing rejections to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"line", "error", "preview"}); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single rejection to the CSV file.
func (cw *CSVWriter) Write(r model.Rejection) error {
	record := []string{
		strconv.Itoa(r.Line),
		r.Error,
		r.Preview,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return errors.Join(cw.writer.Error(), cw.file.Close())
}
