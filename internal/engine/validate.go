/*
PURPOSE:
  Validator. Re-reads a JSON Lines file and checks that every non-blank
  line parses on its own.

REQUIREMENTS:
  User-specified:
  - 1-indexed line numbers in diagnostics.
  - Stop at the first invalid line.
  - On success report how many lines were validated.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (Migrate callers), internal/cli (validate)

ERROR HANDLING:
  - Invalid lines return *LineError, which matches ErrValidation via errors.Is.
  - I/O errors are returned wrapped and do not match ErrValidation.

IMPLEMENTATION RULES:
  - bufio.Reader instead of Scanner: record lines have no length cap.

USAGE:
  n, err := engine.Validate("events.jsonl")
*/

package engine

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/valyala/fastjson"
)

// ErrValidation is matched by every error reporting an invalid line.
var ErrValidation = errors.New("validation failed")

// LineError reports the first line of a file that is not valid JSON.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d is not valid JSON: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

func (e *LineError) Is(target error) bool { return target == ErrValidation }

// Validate checks the JSON Lines file at path.
func Validate(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ValidateReader(f)
}

// ValidateReader checks every non-blank line of r and returns the number of
// valid lines seen.
func ValidateReader(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	valid, lineNo := 0, 0
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++
			if len(bytes.TrimSpace(line)) > 0 {
				if verr := fastjson.ValidateBytes(line); verr != nil {
					return valid, &LineError{Line: lineNo, Err: verr}
				}
				valid++
			}
		}
		if err == io.EOF {
			return valid, nil
		}
		if err != nil {
			return valid, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
		}
	}
}
