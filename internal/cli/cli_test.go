package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/migrate-to-jsonl/internal/config"
	"github.com/daryltucker/migrate-to-jsonl/internal/engine"
	"github.com/daryltucker/migrate-to-jsonl/internal/model"
	"github.com/daryltucker/migrate-to-jsonl/internal/output"
)

// run executes a fresh command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := output.Logger
	t.Cleanup(func() { output.SetLogger(prev) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMigrateSuccess(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", "garbage\n{\"a\":1}\n{\"b\":2}\n")
	out := filepath.Join(dir, "out.jsonl")

	stdout, _, err := run(t, in, out)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{
		"Migrating " + in + " to JSONL format...",
		"Extracted 2 records",
		"Validating " + out + "...",
		"✓ All 2 lines are valid JSON",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	got, _ := os.ReadFile(out)
	if string(got) != "{\"a\":1}\n{\"b\":2}\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestUsageError(t *testing.T) {
	for _, args := range [][]string{{}, {"only-one"}, {"a", "b", "c"}} {
		stdout, stderr, err := run(t, args...)
		if err == nil || !strings.Contains(err.Error(), "accepts 2 arg(s)") {
			t.Fatalf("args %v: expected arg count error, got %v", args, err)
		}
		if !strings.Contains(stdout+stderr, "Usage:") {
			t.Fatalf("args %v: expected usage text", args)
		}
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.jsonl")
	_, _, err := run(t, filepath.Join(dir, "missing.json"), out)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output must not be created when input is missing")
	}
}

func TestWarningsGoToStderr(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", "{\"a\":1}\n{\"b\": }\n{\"c\":3}\n")
	out := filepath.Join(dir, "out.jsonl")

	stdout, stderr, err := run(t, "--log-format", "json", in, out)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(stdout, "Extracted 2 records") {
		t.Fatalf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, `"msg":"Failed to parse object"`) || !strings.Contains(stderr, `"line":2`) {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "migrate.yaml", "string_aware: false\nrejects_file: "+filepath.Join(dir, "from-config.csv")+"\n")
	in := writeFile(t, dir, "in.json", "{\"note\":\"a{b\"}\n{\"c\":1}\n")
	out := filepath.Join(dir, "out.jsonl")
	rejects := filepath.Join(dir, "from-flag.csv")

	stdout, _, err := run(t, "--config", cfgPath, "--string-aware", "--rejects", rejects, in, out)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(stdout, "Extracted 2 records") {
		t.Fatalf("stdout = %q", stdout)
	}
	if _, err := os.Stat(rejects); err != nil {
		t.Fatalf("rejects file from flag not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-config.csv")); !os.IsNotExist(err) {
		t.Fatalf("config rejects path should be overridden")
	}
}

func TestInvalidFlagValue(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", "{\"a\":1}\n")
	_, _, err := run(t, "--log-format", "xml", in, filepath.Join(dir, "out.jsonl"))
	if err == nil || !strings.Contains(err.Error(), "log_format") {
		t.Fatalf("expected log_format error, got %v", err)
	}
}

func TestCheckFlag(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.jsonl", "{\"a\":1}\n\n{\"b\":2}\n")
	stdout, _, err := run(t, "--check", good)
	if err != nil {
		t.Fatalf("check good: %v", err)
	}
	if !strings.Contains(stdout, "✓ All 2 lines are valid JSON") || strings.Contains(stdout, "Migrating") {
		t.Fatalf("stdout = %q", stdout)
	}

	bad := writeFile(t, dir, "bad.jsonl", "{\"a\":1}\n{\"b\":2}\nnot json\n{\"c\":3}\n")
	_, _, err = run(t, "--check", bad)
	var lerr *engine.LineError
	if !errors.As(err, &lerr) || lerr.Line != 3 {
		t.Fatalf("expected line 3 error, got %v", err)
	}
	if !errors.Is(err, engine.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	if _, _, err := run(t, "--check", good, "extra"); err == nil {
		t.Fatalf("expected error for positional args with --check")
	}
}

func TestInputNamedLikeAWord(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	writeFile(t, dir, "validate", "junk\n{\"a\":1}\n")

	stdout, _, err := run(t, "validate", "out.jsonl")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(stdout, "Migrating validate to JSONL format...") {
		t.Fatalf("stdout = %q", stdout)
	}
	got, err := os.ReadFile(filepath.Join(dir, "out.jsonl"))
	if err != nil || string(got) != "{\"a\":1}\n" {
		t.Fatalf("output = %q, %v", got, err)
	}
}

func TestPostWriteValidationFailure(t *testing.T) {
	prev := migrate
	t.Cleanup(func() { migrate = prev })
	badOutput := "{\"a\":1}\nnot json\n"
	migrate = func(_ *config.Config, _, out string) (model.Summary, error) {
		return model.Summary{Records: 2}, os.WriteFile(out, []byte(badOutput), 0o644)
	}

	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", "{\"a\":1}\n")
	out := filepath.Join(dir, "out.jsonl")

	stdout, _, err := run(t, in, out)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !strings.Contains(err.Error(), "validation of "+out+" failed") {
		t.Fatalf("error = %v", err)
	}
	var lerr *engine.LineError
	if !errors.As(err, &lerr) || lerr.Line != 2 {
		t.Fatalf("expected line 2 error, got %v", err)
	}
	if !strings.Contains(stdout, "Extracted 2 records") || strings.Contains(stdout, "✓") {
		t.Fatalf("stdout = %q", stdout)
	}
	got, readErr := os.ReadFile(out)
	if readErr != nil || string(got) != badOutput {
		t.Fatalf("bad output must stay on disk: %q, %v", got, readErr)
	}
}
