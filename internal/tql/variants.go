package tql

import "github.com/roach88/tql/internal/value"

// Equal builds (field = operand).
func Equal(field string, operand value.Value) Operator {
	return New(KindEqual, field, operand)
}

// Unequal builds (field != operand).
func Unequal(field string, operand value.Value) Operator {
	return New(KindUnequal, field, operand)
}

// GreaterThan builds (field > operand).
func GreaterThan(field string, operand value.Value) Operator {
	return New(KindGreaterThan, field, operand)
}

// GreaterThanOrEqual builds (field >= operand).
func GreaterThanOrEqual(field string, operand value.Value) Operator {
	return New(KindGreaterThanOrEqual, field, operand)
}

// LessThan builds (field < operand).
func LessThan(field string, operand value.Value) Operator {
	return New(KindLessThan, field, operand)
}

// LessThanOrEqual builds (field <= operand).
func LessThanOrEqual(field string, operand value.Value) Operator {
	return New(KindLessThanOrEqual, field, operand)
}

// In builds (field in [v1, v2, ...]). A scalar operand is treated as a
// one-element list.
func In(field string, operand value.Value) Operator {
	return New(KindIn, field, operand)
}

// Contains builds (field contains 'text').
func Contains(field string, operand value.Value) Operator {
	return New(KindContains, field, operand)
}

// ContainsIgnoreCase builds (field containsIgnoreCase 'text').
func ContainsIgnoreCase(field string, operand value.Value) Operator {
	return New(KindContainsIgnoreCase, field, operand)
}

// Complies builds (field complies 'pattern'), a character-class pattern
// check such as 'Aaa 99'.
func Complies(field string, operand value.Value) Operator {
	return New(KindComplies, field, operand)
}

// WordComplies builds (field wordComplies 'pattern'), a word pattern check
// such as '[Word] [digit]'.
func WordComplies(field string, operand value.Value) Operator {
	return New(KindWordComplies, field, operand)
}

// Match builds (field ~ 'regex').
func Match(field string, operand value.Value) Operator {
	return New(KindMatch, field, operand)
}

// Between builds (field between [min, max]). The operand is a two-element
// List or a value.Range.
func Between(field string, operand value.Value) Operator {
	return New(KindBetween, field, operand)
}

// Quality builds an existence check per quality keyword
// (QualityValid, QualityInvalid, QualityEmpty).
func Quality(field string, operand value.Value) Operator {
	return New(KindQuality, field, operand)
}

// Empty builds (field is empty). Any operand is ignored.
func Empty(field string, operand value.Value) Operator {
	return New(KindEmpty, field, operand)
}

// Valid builds (field is valid). Any operand is ignored.
func Valid(field string, operand value.Value) Operator {
	return New(KindValid, field, operand)
}

// Invalid builds (field is invalid). Any operand is ignored.
func Invalid(field string, operand value.Value) Operator {
	return New(KindInvalid, field, operand)
}

// IsNull builds (field is null). Any operand is ignored.
func IsNull(field string, operand value.Value) Operator {
	return New(KindIsNull, field, operand)
}
