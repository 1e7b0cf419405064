package tql

import (
	"strings"

	"github.com/roach88/tql/internal/value"
)

// Quality keywords understood by the quality predicate.
const (
	QualityValid   = "valid"
	QualityInvalid = "invalid"
	QualityEmpty   = "empty"
)

// renderSingle is the default shape: (field symbol operand).
func renderSingle(symbol, field string, operand value.Value) (string, error) {
	return "(" + field + " " + symbol + " " + value.Wrap(operand) + ")", nil
}

// renderZero is the existence shape: (field keyword). The operand is never
// inspected.
func renderZero(symbol, field string, _ value.Value) (string, error) {
	return "(" + field + " " + symbol + ")", nil
}

// renderIn normalises the operand to a list and always brackets it:
// (field in [v1, v2, ...]).
func renderIn(symbol, field string, operand value.Value) (string, error) {
	return "(" + field + " " + symbol + " [" + value.JoinWrapped(value.AsList(operand)) + "])", nil
}

// renderBetween accepts a two-element list (inclusive bounds) or a Range:
// (field between [min, max]), with ] or [ marking an open side.
func renderBetween(symbol, field string, operand value.Value) (string, error) {
	var r value.Range
	switch val := operand.(type) {
	case value.Range:
		r = val
	case value.List:
		if len(val) != 2 {
			return "", &MalformedOperandError{Symbol: symbol, Reason: "expects two bounds."}
		}
		r = value.Closed(val[0], val[1])
	default:
		return "", &MalformedOperandError{Symbol: symbol, Reason: "expects two bounds."}
	}

	if !value.IsDefined(r.Min) || !value.IsDefined(r.Max) {
		return "", &MalformedOperandError{Symbol: symbol, Reason: "expects two bounds."}
	}
	return "(" + field + " " + symbol + " " + value.Wrap(r) + ")", nil
}

// renderQuality turns keywords into existence checks on the field. One
// keyword renders (field is k); several render ((field is k1) or (field is k2)).
func renderQuality(symbol, field string, operand value.Value) (string, error) {
	keywords := value.AsList(operand)
	if len(keywords) == 0 {
		return "", &MalformedOperandError{Symbol: symbol, Reason: "expects at least one keyword."}
	}

	parts := make([]string, len(keywords))
	for i, kw := range keywords {
		parts[i] = "(" + field + " is " + qualityKeyword(kw) + ")"
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, " or ") + ")", nil
}

// qualityKeyword returns the bare keyword text; strings are not quoted.
func qualityKeyword(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return string(s)
	}
	return value.Wrap(v)
}
