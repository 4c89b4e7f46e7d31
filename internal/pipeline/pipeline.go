// Package pipeline wires the scanner, parser, resolver and evaluator into
// the single fail-fast sequence spec §6 describes: later phases never run
// once an earlier one has reported any error.
package pipeline

import (
	"io"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/evaluator"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
	"github.com/funvibe/lox/internal/resolver"
	"github.com/funvibe/lox/internal/token"
)

// PipelineContext carries a run's evolving state through each Processor:
// the source text, the tokens/statements produced so far, the output
// sink the evaluate stage prints to, and the accumulated diagnostics bag
// any stage may add to.
type PipelineContext struct {
	Source       string
	Out          io.Writer
	MaxCallDepth int

	Tokens []token.Token
	Stmts  []ast.Stmt
	Errors diagnostics.Bag
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds the four-stage Lox pipeline: scan, parse, resolve, evaluate.
func New() *Pipeline {
	return &Pipeline{processors: []Processor{
		scanStage{},
		parseStage{},
		resolveStage{},
		evaluateStage{},
	}}
}

// Run executes the pipeline, short-circuiting as soon as any processor's
// stage has recorded an error (spec §6).
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		if ctx.Errors.HasErrors() {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}

type scanStage struct{}

func (scanStage) Process(ctx *PipelineContext) *PipelineContext {
	lx := lexer.New(ctx.Source)
	ctx.Tokens = lx.ScanTokens()
	ctx.Errors = lx.Errors
	return ctx
}

type parseStage struct{}

func (parseStage) Process(ctx *PipelineContext) *PipelineContext {
	ps := parser.New(ctx.Tokens)
	ctx.Stmts = ps.Parse()
	ctx.Errors = ps.Errors
	return ctx
}

type resolveStage struct{}

func (resolveStage) Process(ctx *PipelineContext) *PipelineContext {
	rs := resolver.New()
	rs.Resolve(ctx.Stmts)
	ctx.Errors = rs.Errors
	return ctx
}

type evaluateStage struct{}

func (evaluateStage) Process(ctx *PipelineContext) *PipelineContext {
	ev := evaluator.New(ctx.Out, ctx.MaxCallDepth)
	if err := ev.Interpret(ctx.Stmts); err != nil {
		if de, ok := err.(*diagnostics.Error); ok {
			ctx.Errors.Add(de)
		} else {
			ctx.Errors.Add(diagnostics.New(diagnostics.RuntimeError, 0, "%s", err.Error()))
		}
	}
	return ctx
}

// Run drives source through the full pipeline and returns the resulting
// context, whose Errors bag (empty on success) determines the process
// exit code (spec §7).
func Run(source string, out io.Writer, maxCallDepth int) *PipelineContext {
	ctx := &PipelineContext{Source: source, Out: out, MaxCallDepth: maxCallDepth}
	return New().Run(ctx)
}
