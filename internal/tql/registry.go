package tql

import (
	"fmt"
	"sort"

	"github.com/roach88/tql/internal/value"
)

// Constructor builds an operator from a field and an optional operand.
type Constructor func(field string, operand value.Value) Operator

// registry maps each kind name to its constructor. It is written once at
// package init; Lookup, Names and Build are the only ways in.
var registry = map[string]Constructor{
	"Equal":              Equal,
	"Unequal":            Unequal,
	"GreaterThan":        GreaterThan,
	"GreaterThanOrEqual": GreaterThanOrEqual,
	"LessThan":           LessThan,
	"LessThanOrEqual":    LessThanOrEqual,
	"In":                 In,
	"Contains":           Contains,
	"ContainsIgnoreCase": ContainsIgnoreCase,
	"Complies":           Complies,
	"WordComplies":       WordComplies,
	"Match":              Match,
	"Between":            Between,
	"Quality":            Quality,
	"Empty":              Empty,
	"Valid":              Valid,
	"Invalid":            Invalid,
	"IsNull":             IsNull,
}

// Lookup returns the constructor registered under name.
func Lookup(name string) (Constructor, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns every registered name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up name and constructs an operator, failing only when the
// name is not registered.
func Build(name, field string, operand value.Value) (Operator, error) {
	c, ok := Lookup(name)
	if !ok {
		return Operator{}, fmt.Errorf("unknown operator %q", name)
	}
	return c(field, operand), nil
}
