package predfile

import (
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue/token"

	"github.com/roach88/tql/internal/logger"
	"github.com/roach88/tql/internal/tql"
	"github.com/roach88/tql/internal/value"
)

// Definition is one named predicate as written in a source file.
type Definition struct {
	Name  string `yaml:"name" json:"name"`
	Op    string `yaml:"op" json:"op"`
	Field string `yaml:"field" json:"field"`
	Value any    `yaml:"value,omitempty" json:"value,omitempty"`

	// Pos locates the definition in a CUE source. Zero for YAML.
	Pos token.Pos `yaml:"-" json:"-"`
}

// Fragment is a compiled definition.
type Fragment struct {
	Name  string `json:"name"`
	Op    string `json:"op"`
	Field string `json:"field"`
	Text  string `json:"text"`
}

// Build resolves the operator name through the registry and converts the
// value. It does not serialize, so a missing operand is not reported here.
func (d Definition) Build() (tql.Operator, error) {
	if d.Op == "" {
		return tql.Operator{}, d.errorf(ErrCodeUnknownOperator, "op is required")
	}
	ctor, ok := tql.Lookup(d.Op)
	if !ok {
		return tql.Operator{}, d.errorf(ErrCodeUnknownOperator, "unknown operator %q", d.Op)
	}
	if strings.TrimSpace(d.Field) == "" {
		return tql.Operator{}, d.errorf(ErrCodeMissingField, "field is required")
	}

	operand, err := value.Of(d.Value)
	if err != nil {
		return tql.Operator{}, d.errorf(ErrCodeInvalidValue, "invalid value: %v", err)
	}
	return ctor(d.Field, operand), nil
}

// Compile builds and serializes every definition in order. In fail-fast
// mode it stops at the first error; in collect-all mode it returns the
// fragments that compiled together with every error.
func Compile(defs []Definition, mode LoadMode) ([]Fragment, []error) {
	var (
		frags []Fragment
		errs  []error
	)
	seen := make(map[string]bool, len(defs))

	for _, d := range defs {
		frag, err := compileOne(d, seen)
		if err != nil {
			logCompileError(d, err)
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return frags, errs
			}
			continue
		}
		frags = append(frags, frag)
	}
	return frags, errs
}

// Operators builds every definition, failing on the first error. Used by
// callers that store operators rather than fragments.
func Operators(defs []Definition) ([]tql.Operator, error) {
	ops := make([]tql.Operator, 0, len(defs))
	for _, d := range defs {
		op, err := d.Build()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func compileOne(d Definition, seen map[string]bool) (Fragment, error) {
	if d.Name == "" {
		return Fragment{}, d.errorf(ErrCodeMissingName, "name is required")
	}
	if seen[d.Name] {
		return Fragment{}, d.errorf(ErrCodeDuplicateName, "defined more than once")
	}
	seen[d.Name] = true

	op, err := d.Build()
	if err != nil {
		return Fragment{}, err
	}

	text, err := op.Serialize()
	if err != nil {
		return Fragment{}, d.errorf(serializeCode(err), "%v", err)
	}
	return Fragment{Name: d.Name, Op: d.Op, Field: d.Field, Text: text}, nil
}

func logCompileError(d Definition, err error) {
	code := ErrCodeGeneric
	var le *LoadError
	if errors.As(err, &le) {
		code = le.Code
	}
	logger.Named("predfile").Debugw("definition failed",
		logger.FieldName, d.Name,
		logger.FieldOperator, d.Op,
		logger.FieldField, d.Field,
		logger.FieldErrorCode, code,
		logger.FieldError, err)
}

func serializeCode(err error) string {
	switch {
	case errors.Is(err, tql.ErrMissingOperand):
		return ErrCodeMissingOperand
	case errors.Is(err, tql.ErrMalformedOperand):
		return ErrCodeMalformed
	default:
		return ErrCodeGeneric
	}
}

func (d Definition) errorf(code, format string, args ...any) *LoadError {
	msg := fmt.Sprintf(format, args...)
	if d.Name != "" {
		msg = d.Name + ": " + msg
	}
	return &LoadError{Code: code, Message: msg, Pos: d.Pos}
}
