/*
PURPOSE:
  Brace counters used by the Extractor to find object boundaries.

IMPLEMENTATION RULES:
  - countBraces is the default and counts every brace, even inside strings.
  - countBracesStringAware is opt-in (--string-aware).

RELATED FILES:
  - internal/engine/extract.go
*/

package engine

import "strings"

// braceCounter reports the net change in brace depth contributed by one line.
type braceCounter func(line string) int

// countBraces is the plain count of '{' minus '}'. Braces inside string
// literals are counted too.
func countBraces(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// countBracesStringAware ignores braces inside string literals.
// String state starts fresh on every line: JSON strings cannot hold a raw newline.
func countBracesStringAware(line string) int {
	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}
