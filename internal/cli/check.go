/*
PURPOSE:
  Post-write validation step shared by the migration and `--check`.
  Prints the outcome in the tool's progress format.

REQUIREMENTS:
  User-specified:
  - Report the first invalid line (1-indexed) and fail.
  - On success print the number of validated lines.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli/root.go
  - Calls: internal/engine.Validate

ERROR HANDLING:
  - Returns a wrapped engine error; *engine.LineError survives errors.As.
  - The validated file is never modified or removed.

RELATED FILES:
  - internal/engine/validate.go
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/migrate-to-jsonl/internal/engine"
)

// validateFile runs the validator and prints the outcome.
func validateFile(cmd *cobra.Command, path string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n", path)

	n, err := engine.Validate(path)
	if err != nil {
		return fmt.Errorf("✗ validation of %s failed: %w", path, err)
	}
	fmt.Fprintf(w, "✓ All %d lines are valid JSON\n", n)
	return nil
}
