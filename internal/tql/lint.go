package tql

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/roach88/tql/internal/value"
)

// LintResult contains the authoring analysis of a set of operators.
//
// Warnings never block serialization. They flag operators that serialize
// but are unlikely to mean what their author intended.
type LintResult struct {
	// Clean is true when no warnings were produced.
	Clean bool `json:"clean"`

	// Warnings lists one message per finding, in operator order.
	Warnings []string `json:"warnings,omitempty"`
}

// Lint checks operators for authoring mistakes:
//  1. Empty field names
//  2. Operands passed to zero-operand kinds (they are dropped)
//  3. List operands on single-operand kinds
//  4. Empty in lists
//  5. String operands containing a single quote (not escaped on output)
//  6. Between bounds in descending order
//  7. Unknown quality keywords
//  8. Match patterns that do not compile as regular expressions
//
// Lint is a pure function with no side effects.
func Lint(ops ...Operator) LintResult {
	l := &linter{
		warnings: []string{},
	}
	for i, op := range ops {
		l.lintOperator(i, op)
	}

	return LintResult{
		Clean:    len(l.warnings) == 0,
		Warnings: l.warnings,
	}
}

// linter accumulates warnings during traversal.
type linter struct {
	warnings []string
}

// addWarning appends a warning message prefixed with the operator position.
func (l *linter) addWarning(index int, op Operator, format string, args ...any) {
	prefix := fmt.Sprintf("#%d %s(%s): ", index, op.Kind(), op.Field())
	l.warnings = append(l.warnings, prefix+fmt.Sprintf(format, args...))
}

func (l *linter) lintOperator(i int, op Operator) {
	if !op.Kind().Valid() {
		l.addWarning(i, op, "unknown operator kind")
		return
	}

	if strings.TrimSpace(op.Field()) == "" {
		l.addWarning(i, op, "empty field name")
	}

	operand := op.Operand()
	if !op.Kind().HasOperand() {
		if value.IsDefined(operand) {
			l.addWarning(i, op, "operand %s is ignored by %q", value.Wrap(operand), op.Kind().Symbol())
		}
		return
	}
	if !value.IsDefined(operand) {
		// Serialize reports this one.
		return
	}

	l.lintQuotes(i, op, operand)

	switch op.Kind() {
	case KindIn:
		if list, ok := operand.(value.List); ok && len(list) == 0 {
			l.addWarning(i, op, "empty in list matches nothing")
		}
	case KindBetween:
		l.lintBetween(i, op, operand)
	case KindQuality:
		l.lintQuality(i, op, operand)
	case KindMatch:
		if s, ok := operand.(value.String); ok {
			if _, err := regexp.Compile(string(s)); err != nil {
				l.addWarning(i, op, "pattern does not compile: %v", err)
			}
		}
	default:
		switch operand.(type) {
		case value.List, value.Range:
			l.addWarning(i, op, "%q expects a single value, got %s", op.Kind().Symbol(), value.Wrap(operand))
		}
	}
}

// lintQuotes flags string operands that would break out of their quotes.
func (l *linter) lintQuotes(i int, op Operator, operand value.Value) {
	var strs []value.String
	switch val := operand.(type) {
	case value.String:
		strs = append(strs, val)
	case value.List:
		for _, elem := range val {
			if s, ok := elem.(value.String); ok {
				strs = append(strs, s)
			}
		}
	case value.Range:
		for _, b := range []value.Value{val.Min, val.Max} {
			if s, ok := b.(value.String); ok {
				strs = append(strs, s)
			}
		}
	}

	for _, s := range strs {
		if strings.ContainsRune(string(s), '\'') {
			l.addWarning(i, op, "string %q contains a single quote, which is not escaped", string(s))
		}
	}
}

func (l *linter) lintBetween(i int, op Operator, operand value.Value) {
	var lo, hi value.Value
	switch val := operand.(type) {
	case value.Range:
		lo, hi = val.Min, val.Max
	case value.List:
		if len(val) != 2 {
			return
		}
		lo, hi = val[0], val[1]
	default:
		return
	}

	if a, ok := value.Number(lo); ok {
		if b, ok := value.Number(hi); ok && a > b {
			l.addWarning(i, op, "bounds are descending: %s > %s", value.Wrap(lo), value.Wrap(hi))
		}
		return
	}
	if a, ok := lo.(value.String); ok {
		if b, ok := hi.(value.String); ok && a > b {
			l.addWarning(i, op, "bounds are descending: %s > %s", value.Wrap(lo), value.Wrap(hi))
		}
	}
}

func (l *linter) lintQuality(i int, op Operator, operand value.Value) {
	for _, kw := range value.AsList(operand) {
		s, ok := kw.(value.String)
		switch {
		case !ok:
			l.addWarning(i, op, "quality keyword %s is not a string", value.Wrap(kw))
		case s != QualityValid && s != QualityInvalid && s != QualityEmpty:
			l.addWarning(i, op, "unknown quality keyword %q", string(s))
		}
	}
}
