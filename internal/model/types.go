/*
PURPOSE:
  Defines the core data structures shared by the migration stages.
  A Record is one recovered JSON value; a Rejection is one candidate
  that failed to parse.

REQUIREMENTS:
  User-specified:
  - Preserve record order (file order).
  - Report parse failures with a short preview of the candidate text.

  Implementation-discovered:
  - Keep the raw JSON text rather than a decoded map, so key order and
    number formatting survive the round trip.
  - Line numbers refer to the original input file.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.

USAGE:
  rec := model.Record{Line: 3, Kind: "object", Raw: []byte(`{"a":1}`)}

RELATED FILES:
  - internal/engine/extract.go
  - internal/output/jsonl.go
  - internal/output/csv.go

MAINTENANCE:
  - Update CSV header mapping when Rejection changes.
*/

package model

// Record is a successfully parsed candidate object.
type Record struct {
	Line int    // 1-indexed input line the candidate starts on
	Kind string // JSON kind reported by the parser ("object", "array", ...)
	Raw  []byte // candidate text as read, possibly spanning several lines
}

// Rejection describes a candidate that failed to parse.
type Rejection struct {
	Line    int    `json:"line"`
	Error   string `json:"error"`
	Preview string `json:"preview"`
}

// Summary is the outcome of a migration run.
type Summary struct {
	Records         int  `json:"records"`
	Rejected        int  `json:"rejected"`
	DroppedTrailing bool `json:"dropped_trailing"`
}
