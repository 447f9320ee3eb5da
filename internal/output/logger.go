/*
PURPOSE:
  Provides a structured logger for the migration tool.
  Wraps slog for consistent output on the diagnostic stream.

REQUIREMENTS:
  User-specified:
  - Parse warnings go to stderr, never to the progress output.

  Implementation-discovered:
  - Needs Warn for per-object failures, Debug for dropped fragments.
  - JSON handler for non-interactive runs.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).

USAGE:
  output.Logger.Warn("message", "key", "value")

RELATED FILES:
  - internal/cli/root.go (selects the format)
*/

package output

import (
	"io"
	"log/slog"
	"os"

	"github.com/daryltucker/migrate-to-jsonl/internal/config"
)

var Logger *slog.Logger

func init() {
	Logger = NewLogger(os.Stderr, config.LogFormatText)
}

// NewLogger builds a logger writing to w in the given format.
// Unknown formats fall back to text.
func NewLogger(w io.Writer, format string) *slog.Logger {
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *slog.Logger) {
	Logger = l
}
