// Package filter compiles expression strings into predicates over list
// results, so CLI list commands can narrow their output with a --filter
// flag such as 'Type == "static" && PortOpen'.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Compile builds a predicate over T from an expression. The exported fields
// of T are available as identifiers in the expression.
func Compile[T any](expression string) (func(T) bool, error) {
	var env T
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return predicate[T](program), nil
}

func predicate[T any](program *vm.Program) func(T) bool {
	return func(item T) bool {
		out, err := expr.Run(program, item)
		if err != nil {
			return false
		}
		matched, ok := out.(bool)
		return ok && matched
	}
}

// Apply returns the items the predicate accepts, preserving order.
func Apply[T any](items []T, pred func(T) bool) []T {
	var matched []T
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched
}
