package pipeline_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/lox/internal/pipeline"
)

func TestRunSuccess(t *testing.T) {
	var out bytes.Buffer
	ctx := pipeline.Run(`print "hello" + " " + "world";`, &out, 0)
	if ctx.Errors.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors.Errors)
	}
	if strings.TrimSpace(out.String()) != "hello world" {
		t.Errorf("got %q, want \"hello world\"", out.String())
	}
}

func TestRunStopsAtFirstScannerError(t *testing.T) {
	var out bytes.Buffer
	ctx := pipeline.Run("@", &out, 0)
	if !ctx.Errors.HasErrors() {
		t.Fatal("expected a scanner error")
	}
	if ctx.Errors.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1 (scanner)", ctx.Errors.ExitCode())
	}
}

func TestRunStopsAtFirstParserError(t *testing.T) {
	var out bytes.Buffer
	ctx := pipeline.Run("1 = 2;", &out, 0)
	if !ctx.Errors.HasErrors() {
		t.Fatal("expected a parser error")
	}
	if ctx.Errors.ExitCode() != 2 {
		t.Errorf("exit code = %d, want 2 (parser)", ctx.Errors.ExitCode())
	}
}

func TestRunStopsAtResolutionError(t *testing.T) {
	var out bytes.Buffer
	ctx := pipeline.Run("return 1;", &out, 0)
	if !ctx.Errors.HasErrors() {
		t.Fatal("expected a resolution error")
	}
	if ctx.Errors.ExitCode() != 4 {
		t.Errorf("exit code = %d, want 4 (resolution)", ctx.Errors.ExitCode())
	}
	if out.Len() != 0 {
		t.Errorf("evaluator should never have run, got output %q", out.String())
	}
}

func TestRunRuntimeError(t *testing.T) {
	var out bytes.Buffer
	ctx := pipeline.Run(`print 1 + "x";`, &out, 0)
	if !ctx.Errors.HasErrors() {
		t.Fatal("expected a runtime error")
	}
	if ctx.Errors.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3 (runtime)", ctx.Errors.ExitCode())
	}
}
