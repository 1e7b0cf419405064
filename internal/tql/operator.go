package tql

import (
	"fmt"

	"github.com/roach88/tql/internal/value"
)

// Operator is one predicate: a field, an optional operand and a Kind.
//
// Operators are immutable after construction. Construction never fails;
// operand requirements are checked by Serialize.
type Operator struct {
	kind    Kind
	field   string
	operand value.Value
}

// New builds an operator of the given kind. A nil operand means "none".
func New(kind Kind, field string, operand value.Value) Operator {
	return Operator{kind: kind, field: field, operand: operand}
}

// Kind returns the predicate kind.
func (o Operator) Kind() Kind { return o.kind }

// Field returns the field the predicate tests.
func (o Operator) Field() string { return o.field }

// Operand returns the operand as given at construction (possibly nil).
func (o Operator) Operand() value.Value { return o.operand }

// Serialize renders the operator as a TQL fragment.
//
//  1. A kind that requires an operand fails with *MissingOperandError when
//     the operand is not defined.
//  2. A zero-operand kind renders "(field keyword)" and ignores the operand.
//  3. Otherwise the kind's renderer runs; the default is
//     "(field symbol wrap(operand))".
//
// Serialize is pure: repeated calls return identical results.
func (o Operator) Serialize() (string, error) {
	if !o.kind.Valid() {
		return "", fmt.Errorf("unknown operator %s", o.kind)
	}

	decl := kinds[o.kind]
	if decl.hasOperand && !value.IsDefined(o.operand) {
		return "", &MissingOperandError{Symbol: decl.symbol}
	}

	var operand value.Value
	if decl.hasOperand {
		operand = o.operand
	}
	return o.kind.renderer()(decl.symbol, o.field, operand)
}

// String implements fmt.Stringer. Unserializable operators render as
// "<Kind>(field): <error>".
func (o Operator) String() string {
	s, err := o.Serialize()
	if err != nil {
		return o.kind.String() + "(" + o.field + "): " + err.Error()
	}
	return s
}
