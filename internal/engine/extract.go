/*
PURPOSE:
  Object Extractor. Slices brace-balanced chunks out of preprocessed text
  and parses each one as JSON.

REQUIREMENTS:
  User-specified:
  - Skip blank lines entirely (no effect on depth or buffering).
  - A candidate ends whenever depth returns to exactly 0.
  - Malformed candidates are logged (error + preview) and skipped, never fatal.
  - A non-empty buffer left at end of input is dropped without a warning.

  Implementation-discovered:
  - Track the starting line of each candidate for diagnostics.
  - Optional string-aware brace counting.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (Migrate)
  - Uses: internal/model, internal/output (Logger)

ERROR HANDLING:
  - Parse errors become model.Rejection values plus a warning log line.

IMPLEMENTATION RULES:
  - Parse with valyala/fastjson; one Parser reused across candidates.
  - Validate before parsing: anything accepted here must pass the
    Validator on the written output.
  - Records keep the candidate text; the parsed value is not retained.

USAGE:
  ex := engine.Extract(content, engine.ExtractOptions{PreviewLength: 100})
*/

package engine

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/valyala/fastjson"

	"github.com/daryltucker/migrate-to-jsonl/internal/model"
	"github.com/daryltucker/migrate-to-jsonl/internal/output"
)

// ExtractOptions tunes Extract.
type ExtractOptions struct {
	StringAware   bool
	PreviewLength int
	// FirstLine is the original line number of content's first line. Zero means 1.
	FirstLine int
}

// Extraction is the result of scanning one input.
type Extraction struct {
	Records    []model.Record
	Rejections []model.Rejection
	// Trailing is set when an unbalanced fragment was left at end of input.
	Trailing bool
}

// Extract scans content line by line and returns every candidate object that
// parses, in input order.
func Extract(content string, opts ExtractOptions) Extraction {
	count := braceCounter(countBraces)
	if opts.StringAware {
		count = countBracesStringAware
	}
	first := opts.FirstLine
	if first <= 0 {
		first = 1
	}

	var (
		ex     Extraction
		parser fastjson.Parser
		buf    []string
		depth  int
		start  int
	)

	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(buf) == 0 {
			start = first + i
		}

		depth += count(line)
		buf = append(buf, line)
		if depth != 0 {
			continue
		}

		text := strings.Join(buf, "\n")
		buf = buf[:0]

		v, err := parseCandidate(&parser, text)
		if err != nil {
			p := preview(text, opts.PreviewLength)
			output.Logger.Warn("Failed to parse object", "line", start, "error", err, "preview", p)
			ex.Rejections = append(ex.Rejections, model.Rejection{
				Line:    start,
				Error:   err.Error(),
				Preview: p,
			})
			continue
		}
		ex.Records = append(ex.Records, model.Record{
			Line: start,
			Kind: v.Type().String(),
			Raw:  []byte(text),
		})
	}

	if len(buf) > 0 {
		ex.Trailing = true
		output.Logger.Debug("Dropped incomplete trailing fragment", "line", start, "depth", depth)
	}
	return ex
}

var errInvalidUTF8 = errors.New("invalid UTF-8 in object text")

// parseCandidate accepts only valid UTF-8 that fastjson.Validate agrees with.
// Parser.Parse alone lets raw control characters, unknown escapes and NaN through.
func parseCandidate(p *fastjson.Parser, text string) (*fastjson.Value, error) {
	if !utf8.ValidString(text) {
		return nil, errInvalidUTF8
	}
	if err := fastjson.Validate(text); err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// preview returns at most n runes of s.
func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	seen := 0
	for i := range s {
		if seen == n {
			return s[:i]
		}
		seen++
	}
	return s
}
