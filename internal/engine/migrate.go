/*
PURPOSE:
  High-level runner that orchestrates one migration.
  Preprocessor -> Extractor -> Writer, strictly forward.

REQUIREMENTS:
  User-specified:
  - Read the whole input, recover every parseable object, write JSONL.
  - Write/I/O errors abort the run.

  Implementation-discovered:
  - Optional CSV report of rejected candidates.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine, internal/output, internal/config

ERROR HANDLING:
  - Per-object parse errors are logged and counted, never returned.
  - Read and write failures are returned wrapped.

IMPLEMENTATION RULES:
  - Validation is a separate step (Validate) run by the caller.

USAGE:
  summary, err := engine.Migrate(cfg, "events.json", "events.jsonl")

RELATED FILES:
  - internal/engine/extract.go
  - internal/output/jsonl.go
*/

package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/daryltucker/migrate-to-jsonl/internal/config"
	"github.com/daryltucker/migrate-to-jsonl/internal/model"
	"github.com/daryltucker/migrate-to-jsonl/internal/output"
)

// Migrate converts the file at inputPath into JSON Lines at outputPath.
func Migrate(cfg *config.Config, inputPath, outputPath string) (model.Summary, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to read input %s: %w", inputPath, err)
	}

	content, skipped := Preprocess(string(data))
	if skipped > 0 {
		output.Logger.Debug("Skipped leading fragment", "lines", skipped)
	}

	ex := Extract(content, ExtractOptions{
		StringAware:   cfg.StringAware,
		PreviewLength: cfg.PreviewLength,
		FirstLine:     skipped + 1,
	})

	if err := output.WriteJSONL(outputPath, ex.Records); err != nil {
		return model.Summary{}, fmt.Errorf("failed to write output %s: %w", outputPath, err)
	}

	if cfg.RejectsFile != "" {
		if err := writeRejects(cfg.RejectsFile, ex.Rejections); err != nil {
			return model.Summary{}, fmt.Errorf("failed to write rejects report %s: %w", cfg.RejectsFile, err)
		}
	}

	return model.Summary{
		Records:         len(ex.Records),
		Rejected:        len(ex.Rejections),
		DroppedTrailing: ex.Trailing,
	}, nil
}

func writeRejects(path string, rejections []model.Rejection) (err error) {
	w, err := output.NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()

	for _, r := range rejections {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
