/*
PURPOSE:
  Defines the root Cobra command: `migrate-to-jsonl <input_file> <output_file>`.
  Runs the migration, then validates what was written.

REQUIREMENTS:
  User-specified:
  - Exactly two positional arguments; usage message otherwise.
  - Missing input is an error before any processing.
  - Print: start notice, extracted count, validation notice, success line.
  - Validation failure exits non-zero and leaves the output on disk.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Optional YAML config, with flags taking precedence.
  - `--check <file>` validates an existing JSONL file instead of migrating.
    A flag rather than a subcommand: a subcommand name would shadow an
    input file of the same name.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/migrate-to-jsonl/main.go
  - Calls: internal/engine.Migrate, internal/engine.Validate
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Usage is printed only for argument errors (SilenceUsage once running).

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Migrate -> Validate.
  - Progress goes to cmd.OutOrStdout(); diagnostics go through output.Logger.

USAGE:
  migrate-to-jsonl events.json events.jsonl
  migrate-to-jsonl --string-aware --rejects rejects.csv events.json events.jsonl
  migrate-to-jsonl --check events.jsonl

RELATED FILES:
  - cmd/migrate-to-jsonl/main.go
  - internal/cli/check.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/migrate-to-jsonl/internal/config"
	"github.com/daryltucker/migrate-to-jsonl/internal/engine"
	"github.com/daryltucker/migrate-to-jsonl/internal/output"
)

// migrate is the migration step; tests substitute a writer that produces bad output.
var migrate = engine.Migrate

// flags holds command-line overrides.
type flags struct {
	cfgFile       string
	checkFile     string
	stringAware   bool
	previewLength int
	rejectsFile   string
	logFormat     string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "migrate-to-jsonl <input_file> <output_file> | --check <file>",
		Short: "Repair a multi-line JSON dump into JSON Lines",
		Long: `Recovers JSON objects from a file where records span several lines and are
concatenated without delimiters, and writes them one compact object per line.

Object boundaries are found by brace counting. A truncated fragment before the
first object is discarded; objects that fail to parse are reported and skipped.
The output is re-read and validated before the run is declared successful.`,
		Example: `  # Basic migration
  migrate-to-jsonl hot.json hot.jsonl

  # Ignore braces inside strings and keep a report of skipped objects
  migrate-to-jsonl --string-aware --rejects rejects.csv hot.json hot.jsonl

  # Only validate an existing JSON Lines file
  migrate-to-jsonl --check hot.jsonl`,
		Args: func(cmd *cobra.Command, args []string) error {
			if f.checkFile != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			if f.checkFile != "" {
				return validateFile(cmd, f.checkFile)
			}

			in, out := args[0], args[1]
			if _, err := os.Stat(in); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("input file '%s' not found", in)
				}
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Migrating %s to JSONL format...\n", in)
			summary, err := migrate(cfg, in, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Extracted %d records\n", summary.Records)

			return validateFile(cmd, out)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	fl := rootCmd.Flags()
	fl.StringVar(&f.cfgFile, "config", "", "YAML config file (optional)")
	fl.StringVar(&f.logFormat, "log-format", config.LogFormatText, "Diagnostic log format: text or json")
	fl.StringVar(&f.checkFile, "check", "", "Validate an existing JSON Lines file and exit (no migration)")
	fl.BoolVar(&f.stringAware, "string-aware", false, "Ignore braces inside string literals when finding object boundaries")
	fl.IntVar(&f.previewLength, "preview-length", 100, "Characters of a rejected object shown in warnings")
	fl.StringVar(&f.rejectsFile, "rejects", "", "Write a CSV report of rejected objects to this file")

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads the config file (if any), applies explicitly set flags, and
// installs the logger.
func (f *flags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("string-aware") {
		cfg.StringAware = f.stringAware
	}
	if fl.Changed("preview-length") {
		cfg.PreviewLength = f.previewLength
	}
	if fl.Changed("rejects") {
		cfg.RejectsFile = f.rejectsFile
	}
	if fl.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	output.SetLogger(output.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat))
	return cfg, nil
}
