package tql

import (
	"fmt"

	"github.com/roach88/tql/internal/value"
)

// Kind identifies one predicate variant.
type Kind int

// Predicate kinds. The zero Kind is not a valid kind.
const (
	KindUnknown Kind = iota
	KindEqual
	KindUnequal
	KindGreaterThan
	KindGreaterThanOrEqual
	KindLessThan
	KindLessThanOrEqual
	KindIn
	KindContains
	KindContainsIgnoreCase
	KindComplies
	KindWordComplies
	KindMatch
	KindBetween
	KindQuality
	KindEmpty
	KindValid
	KindInvalid
	KindIsNull

	kindCount
)

// renderFunc renders a fragment once the operand check has passed.
// Renderers receive the symbol rather than the Kind so that the kind table
// does not refer back to itself during package initialization.
type renderFunc func(symbol, field string, operand value.Value) (string, error)

// kindDecl is the per-kind declaration: registry name, TQL symbol, operand
// arity, and renderer.
type kindDecl struct {
	name       string
	symbol     string
	hasOperand bool
	render     renderFunc
}

// kinds is indexed by Kind. A nil render selects renderSingle for kinds with
// an operand and renderZero for kinds without.
var kinds = [kindCount]kindDecl{
	KindEqual:              {name: "Equal", symbol: "=", hasOperand: true},
	KindUnequal:            {name: "Unequal", symbol: "!=", hasOperand: true},
	KindGreaterThan:        {name: "GreaterThan", symbol: ">", hasOperand: true},
	KindGreaterThanOrEqual: {name: "GreaterThanOrEqual", symbol: ">=", hasOperand: true},
	KindLessThan:           {name: "LessThan", symbol: "<", hasOperand: true},
	KindLessThanOrEqual:    {name: "LessThanOrEqual", symbol: "<=", hasOperand: true},
	KindIn:                 {name: "In", symbol: "in", hasOperand: true, render: renderIn},
	KindContains:           {name: "Contains", symbol: "contains", hasOperand: true},
	KindContainsIgnoreCase: {name: "ContainsIgnoreCase", symbol: "containsIgnoreCase", hasOperand: true},
	KindComplies:           {name: "Complies", symbol: "complies", hasOperand: true},
	KindWordComplies:       {name: "WordComplies", symbol: "wordComplies", hasOperand: true},
	KindMatch:              {name: "Match", symbol: "~", hasOperand: true},
	KindBetween:            {name: "Between", symbol: "between", hasOperand: true, render: renderBetween},
	KindQuality:            {name: "Quality", symbol: "quality", hasOperand: true, render: renderQuality},
	KindEmpty:              {name: "Empty", symbol: "is empty"},
	KindValid:              {name: "Valid", symbol: "is valid"},
	KindInvalid:            {name: "Invalid", symbol: "is invalid"},
	KindIsNull:             {name: "IsNull", symbol: "is null"},
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindEqual; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < kindCount
}

// String returns the registry name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Symbol returns the TQL token of k, or its keyword for zero-operand kinds.
func (k Kind) Symbol() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].symbol
}

// HasOperand reports whether k requires a defined operand to serialize.
func (k Kind) HasOperand() bool {
	return k.Valid() && kinds[k].hasOperand
}

// ParseKind returns the kind registered under name.
func ParseKind(name string) (Kind, error) {
	for k := KindEqual; k < kindCount; k++ {
		if kinds[k].name == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown operator %q", name)
}

// renderer returns the renderer selected for k.
func (k Kind) renderer() renderFunc {
	decl := kinds[k]
	switch {
	case decl.render != nil:
		return decl.render
	case decl.hasOperand:
		return renderSingle
	default:
		return renderZero
	}
}
