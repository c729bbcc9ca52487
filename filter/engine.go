// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/skillcatalog/catalog"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a filter expression.
	DefaultMaxExpressionLength = 4096

	// DefaultCostLimit is the default runtime cost limit for one evaluation.
	DefaultCostLimit = 100000

	// Variable is the name records are bound to inside expressions.
	Variable = "skill"
)

// Engine compiles filter expressions over skill records.
// It is safe for concurrent use from multiple goroutines.
type Engine struct {
	once sync.Once
	env  *cel.Env
	err  error

	maxExpressionLength int
	costLimit           uint64
}

// Expression is a compiled filter ready for evaluation.
type Expression struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (e *Expression) Source() string {
	return e.source
}

// NewEngine creates an Engine with the default length and cost limits.
func NewEngine() *Engine {
	return &Engine{
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

// WithMaxExpressionLength sets the maximum allowed expression length.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for one evaluation.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(
			cel.Variable(Variable, cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return e.env, e.err
}

func (e *Engine) check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsedAst, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}

	checkedAst, issues := env.Check(parsedAst)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}

	out := checkedAst.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, nil, fmt.Errorf("%w: expression %q evaluates to %s, not bool",
			ErrExpressionCheck, expr, out)
	}
	return env, checkedAst, nil
}

// Compile parses and type checks expr.
//
// Returns an error wrapping ErrExpressionCheck if the expression is too long
// or does not produce a bool, a *ParseError for syntax errors, or a
// *CheckError for type errors.
func (e *Engine) Compile(expr string) (*Expression, error) {
	env, checkedAst, err := e.check(expr)
	if err != nil {
		return nil, err
	}

	program, err := env.Program(checkedAst, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}
	return &Expression{source: expr, program: program}, nil
}

// Check validates expr without creating a program.
// It is intended for configuration validation.
func (e *Engine) Check(expr string) error {
	_, _, err := e.check(expr)
	return err
}

// Match evaluates the expression against rec.
func (e *Expression) Match(rec *catalog.SkillRecord) (bool, error) {
	out, _, err := e.program.Eval(map[string]any{Variable: Activation(rec)})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return result, nil
}

// Activation returns the value rec is bound to in expressions.
func Activation(rec *catalog.SkillRecord) map[string]any {
	return map[string]any{
		"id":          rec.ID,
		"name":        rec.Name,
		"description": rec.Description,
		"category":    string(rec.Category),
		"source":      string(rec.Source),
		"triggers":    rec.Triggers,
		"priority":    int64(rec.Priority),
	}
}
