/*
PURPOSE:
  Writes recovered records to a JSON Lines file.
  One compact JSON text per line, newline-terminated.

REQUIREMENTS:
  User-specified:
  - Tightest standard form: no whitespace between tokens.
  - Create or overwrite the destination.

  Implementation-discovered:
  - Records arrive as raw (possibly multi-line) JSON text. Compacting the
    text instead of re-encoding a decoded map keeps key order intact.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (Migrate)
  - Consumes: internal/model.Record

ERROR HANDLING:
  - Returns error on file creation or write failure. Callers treat it as fatal.

IMPLEMENTATION RULES:
  - Use tidwall/pretty.Ugly for compaction.
  - Buffered; Close() flushes.

USAGE:
  w, err := output.NewJSONLWriter("events.jsonl")
  w.Write(rec)
  w.Close()
*/

package output

import (
	"bufio"
	"errors"
	"os"

	"github.com/tidwall/pretty"

	"github.com/daryltucker/migrate-to-jsonl/internal/model"
)

// JSONLWriter handles writing records to a JSON Lines file.
type JSONLWriter struct {
	file *os.File
	buf  *bufio.Writer
}

// NewJSONLWriter creates a new JSONLWriter.
// It overwrites the file if it exists.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONLWriter{
		file: f,
		buf:  bufio.NewWriter(f),
	}, nil
}

// Write writes a single record as one compact JSON line.
func (jw *JSONLWriter) Write(r model.Record) error {
	if _, err := jw.buf.Write(pretty.Ugly(r.Raw)); err != nil {
		return err
	}
	return jw.buf.WriteByte('\n')
}

// Close flushes pending output and closes the underlying file.
func (jw *JSONLWriter) Close() error {
	return errors.Join(jw.buf.Flush(), jw.file.Close())
}

// WriteJSONL writes every record to path in order.
func WriteJSONL(path string, records []model.Record) (err error) {
	w, err := NewJSONLWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()

	for _, r := range records {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
