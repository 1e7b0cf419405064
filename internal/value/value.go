package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a sealed interface representing operand values.
// Only Null, String, Int, Float, Bool, List and Range implement this.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents an explicit null operand.
// It counts as "not defined" everywhere an operand is required.
type Null struct{}

func (Null) value() {}

// String represents a string operand. Rendered single quoted.
type String string

func (String) value() {}

// Int represents an integer operand.
type Int int64

func (Int) value() {}

// Float represents a decimal operand.
type Float float64

func (Float) value() {}

// Bool represents a boolean operand.
type Bool bool

func (Bool) value() {}

// List represents an ordered sequence of operands.
// Order is preserved exactly as given; it is never sorted or deduplicated.
type List []Value

func (List) value() {}

// Range represents the two bounds of a between predicate.
// MinOpen and MaxOpen select an exclusive bound on that side.
type Range struct {
	Min     Value
	Max     Value
	MinOpen bool
	MaxOpen bool
}

func (Range) value() {}

// Strings builds a List of String values.
func Strings(vals ...string) List {
	l := make(List, len(vals))
	for i, s := range vals {
		l[i] = String(s)
	}
	return l
}

// Ints builds a List of Int values.
func Ints(vals ...int64) List {
	l := make(List, len(vals))
	for i, n := range vals {
		l[i] = Int(n)
	}
	return l
}

// Closed builds an inclusive Range.
func Closed(lo, hi Value) Range {
	return Range{Min: lo, Max: hi}
}

// IsDefined reports whether v carries an operand.
// Falsy but present values (Int(0), Bool(false), String("")) are defined.
func IsDefined(v Value) bool {
	if v == nil {
		return false
	}
	_, isNull := v.(Null)
	return !isNull
}

// Wrap renders v for embedding in a TQL fragment.
//
//	Wrap(Int(666))      == "666"
//	Wrap(String("666")) == "'666'"
//
// Strings are quoted verbatim; embedded quotes are not escaped.
func Wrap(v Value) string {
	switch val := v.(type) {
	case String:
		return "'" + string(val) + "'"
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return formatFloat(float64(val))
	case Bool:
		return strconv.FormatBool(bool(val))
	case List:
		return "[" + JoinWrapped(val) + "]"
	case Range:
		return wrapRange(val)
	case Null, nil:
		return "null"
	default:
		return fmt.Sprint(v)
	}
}

// JoinWrapped wraps each element and joins them with ", ".
func JoinWrapped(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = Wrap(v)
	}
	return strings.Join(parts, ", ")
}

// wrapRange renders [min, max], flipping the bracket on an open side:
// ]min, max[ excludes both bounds.
func wrapRange(r Range) string {
	left, right := "[", "]"
	if r.MinOpen {
		left = "]"
	}
	if r.MaxOpen {
		right = "["
	}
	return left + Wrap(r.Min) + ", " + Wrap(r.Max) + right
}

// Magnitudes outside [minPlainFloat, maxPlainFloat) are written with an
// exponent.
const (
	minPlainFloat = 1e-6
	maxPlainFloat = 1e21
)

// formatFloat writes the shortest decimal form, switching to exponent form
// (1e+300, 1e-07) for very large or very small magnitudes.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if abs := math.Abs(f); abs != 0 && (abs < minPlainFloat || abs >= maxPlainFloat) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AsList normalises v to a List: a List passes through unchanged, any other
// defined value becomes a one-element List.
func AsList(v Value) List {
	if l, ok := v.(List); ok {
		return l
	}
	return List{v}
}

// Number returns v as a float64 when it is numeric.
func Number(v Value) (float64, bool) {
	switch val := v.(type) {
	case Int:
		return float64(val), true
	case Float:
		return float64(val), true
	default:
		return 0, false
	}
}
