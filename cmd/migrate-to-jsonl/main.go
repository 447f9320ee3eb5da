/*
PURPOSE:
  Entry point for migrate-to-jsonl.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - Exit code 1 on any failure, 0 on success.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o migrate-to-jsonl ./cmd/migrate-to-jsonl
  ./migrate-to-jsonl <input_file> <output_file>
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/migrate-to-jsonl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
