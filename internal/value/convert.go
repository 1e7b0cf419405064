package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Range mapping keys accepted by Of.
const (
	keyMin     = "min"
	keyMax     = "max"
	keyMinOpen = "min_open"
	keyMaxOpen = "max_open"
)

// Of converts a Go value into a Value.
//
// nil yields a nil Value (absent operand). Slices become List, and a
// map holding "min"/"max" (optionally "min_open"/"max_open") becomes a
// Range. Any other map or struct is rejected.
func Of(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return fromUint(uint64(val))
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		return fromUint(val)
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return Int(n), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", val, err)
		}
		return Float(f), nil
	case []string:
		return Strings(val...), nil
	case []int64:
		return Ints(val...), nil
	case []int:
		l := make(List, len(val))
		for i, n := range val {
			l[i] = Int(n)
		}
		return l, nil
	case []float64:
		l := make(List, len(val))
		for i, f := range val {
			l[i] = Float(f)
		}
		return l, nil
	case []Value:
		return List(val), nil
	case []any:
		l := make(List, len(val))
		for i, elem := range val {
			ev, err := Of(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if ev == nil {
				ev = Null{}
			}
			l[i] = ev
		}
		return l, nil
	case map[string]any:
		return rangeOf(val)
	default:
		return nil, fmt.Errorf("unsupported operand type: %T", v)
	}
}

func fromUint(n uint64) (Value, error) {
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("integer out of int64 range: %d", n)
	}
	return Int(int64(n)), nil
}

// rangeOf converts a {min, max, min_open, max_open} mapping into a Range.
func rangeOf(m map[string]any) (Value, error) {
	var unknown []string
	for k := range m {
		switch k {
		case keyMin, keyMax, keyMinOpen, keyMaxOpen:
		default:
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unsupported operand mapping keys: %s", strings.Join(unknown, ", "))
	}

	lo, hasMin := m[keyMin]
	hi, hasMax := m[keyMax]
	if !hasMin || !hasMax {
		return nil, fmt.Errorf("range operand needs both %q and %q", keyMin, keyMax)
	}

	minVal, err := boundOf(lo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyMin, err)
	}
	maxVal, err := boundOf(hi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyMax, err)
	}

	r := Range{Min: minVal, Max: maxVal}
	if r.MinOpen, err = flag(m, keyMinOpen); err != nil {
		return nil, err
	}
	if r.MaxOpen, err = flag(m, keyMaxOpen); err != nil {
		return nil, err
	}
	return r, nil
}

// boundOf converts one range bound. An explicit null is kept as Null so
// that a range with an undefined bound decodes to what MarshalCanonical
// wrote; Between rejects it when serialized.
func boundOf(v any) (Value, error) {
	if v == nil {
		return Null{}, nil
	}
	return Of(v)
}

func flag(m map[string]any, key string) (bool, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean, got %T", key, raw)
	}
	return b, nil
}

// Parse reads a command line literal: an integer, then a decimal, then a
// boolean, falling back to a string.
func Parse(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	if looksDecimal(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}
	if s == "true" || s == "false" {
		return Bool(s == "true")
	}
	return String(s)
}

// looksDecimal rejects the spellings ParseFloat accepts that are not plain
// decimals (Inf, NaN, hex floats, underscores).
func looksDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes JSON into a Value. JSON null yields Null, numbers
// without a fraction or exponent yield Int, objects must describe a Range.
func UnmarshalJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return Null{}, nil
	}
	return Of(raw)
}
