/*
PURPOSE:
  Preprocessor. Removes the truncated fragment that precedes the first
  top-level object of a corrupted dump.

REQUIREMENTS:
  User-specified:
  - The first "\n{" marks the first object; no trim when it sits at position 0.

  Implementation-discovered:
  - Text that already opens with '{' is left alone, so migrating an
    already-migrated file keeps its first record.
  - Report how many lines were dropped for line-number mapping.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (Migrate)

ERROR HANDLING:
  - None (pure function).
*/

package engine

import "strings"

// Preprocess drops a truncated fragment that precedes the first top-level
// object. The first "\n{" marks where that object starts; everything before it,
// including the newline, is discarded. Text that already opens with '{', or
// has no such marker, is returned unchanged.
//
// The second return value is the number of lines removed, so callers can map
// line numbers back to the original input.
func Preprocess(content string) (string, int) {
	if strings.HasPrefix(content, "{") {
		return content, 0
	}
	idx := strings.Index(content, "\n{")
	if idx <= 0 {
		return content, 0
	}
	return content[idx+1:], strings.Count(content[:idx+1], "\n")
}
