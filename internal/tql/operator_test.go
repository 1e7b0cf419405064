package tql

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tql/internal/value"
)

func TestSerialize_EndToEnd(t *testing.T) {
	testCases := []struct {
		name string
		op   Operator
		want string
	}{
		{"greater than or equal", GreaterThanOrEqual("f1", value.Int(666)), "(f1 >= 666)"},
		{"unequal string", Unequal("f1", value.String("Charles")), "(f1 != 'Charles')"},
		{"in ints", In("f1", value.Ints(666, 777)), "(f1 in [666, 777])"},
		{"in strings", In("f1", value.Strings("666", "777")), "(f1 in ['666', '777'])"},
		{"in scalar", In("f1", value.Int(666)), "(f1 in [666])"},
		{"in single element", In("f1", value.Ints(666)), "(f1 in [666])"},
		{"in many", In("f1", value.Ints(555, 666, 777, 888, 999)), "(f1 in [555, 666, 777, 888, 999])"},
		{"empty", Empty("f1", nil), "(f1 is empty)"},
		{"equal zero", Equal("f1", value.Int(0)), "(f1 = 0)"},
		{"equal false", Equal("f1", value.Bool(false)), "(f1 = false)"},
		{"equal empty string", Equal("f1", value.String("")), "(f1 = '')"},
		{"all fields", Invalid("*", nil), "(* is invalid)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op.Serialize()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSerialize_MissingOperand(t *testing.T) {
	for _, k := range Kinds() {
		if !k.HasOperand() {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			for _, operand := range []value.Value{nil, value.Null{}} {
				op := New(k, "f1", operand)

				_, err := op.Serialize()
				require.Error(t, err)
				assert.Equal(t, k.Symbol()+" does not allow empty.", err.Error())
				assert.ErrorIs(t, err, ErrMissingOperand)

				var missing *MissingOperandError
				require.True(t, errors.As(err, &missing))
				assert.Equal(t, k.Symbol(), missing.Symbol)
			}
		})
	}
}

func TestSerialize_MissingOperandMessages(t *testing.T) {
	_, err := GreaterThanOrEqual("f1", nil).Serialize()
	require.EqualError(t, err, ">= does not allow empty.")

	_, err = Unequal("f1", nil).Serialize()
	require.EqualError(t, err, "!= does not allow empty.")

	_, err = In("f1", nil).Serialize()
	require.EqualError(t, err, "in does not allow empty.")
}

func TestSerialize_ValidationIsLazy(t *testing.T) {
	// Construction with a missing operand must succeed.
	var op Operator
	require.NotPanics(t, func() { op = GreaterThanOrEqual("f1", nil) })
	assert.Equal(t, KindGreaterThanOrEqual, op.Kind())
	assert.Equal(t, "f1", op.Field())
	assert.Nil(t, op.Operand())

	_, err := op.Serialize()
	assert.ErrorIs(t, err, ErrMissingOperand)
}

func TestSerialize_ZeroOperandIgnoresOperand(t *testing.T) {
	operands := []value.Value{
		nil,
		value.Null{},
		value.String("secret"),
		value.Int(4242),
		value.Strings("a", "b"),
	}

	for _, k := range Kinds() {
		if k.HasOperand() {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			for _, operand := range operands {
				got, err := New(k, "f1", operand).Serialize()
				require.NoError(t, err)
				assert.Equal(t, "(f1 "+k.Symbol()+")", got)
				assert.NotContains(t, got, "secret")
				assert.NotContains(t, got, "4242")
			}
		})
	}
}

func TestSerialize_ReferentiallyTransparent(t *testing.T) {
	ops := []Operator{
		In("f1", value.Ints(3, 1, 2)),
		GreaterThanOrEqual("f1", nil),
		Between("f1", value.Closed(value.Int(1), value.Int(2))),
		Quality("f1", value.Strings(QualityInvalid, QualityEmpty)),
	}

	for _, op := range ops {
		first, firstErr := op.Serialize()
		second, secondErr := op.Serialize()
		assert.Equal(t, first, second)
		assert.Equal(t, firstErr, secondErr)
	}
}

func TestSerialize_InPreservesOrder(t *testing.T) {
	got, err := In("f1", value.List{value.Int(3), value.String("a"), value.Int(1), value.Int(3)}).Serialize()
	require.NoError(t, err)
	assert.Equal(t, "(f1 in [3, 'a', 1, 3])", got, "no sorting or deduplication")
}

func TestSerialize_InEmptyList(t *testing.T) {
	got, err := In("f1", value.List{}).Serialize()
	require.NoError(t, err)
	assert.Equal(t, "(f1 in [])", got)
}

func TestSerialize_Between(t *testing.T) {
	testCases := []struct {
		name    string
		operand value.Value
		want    string
	}{
		{"ints", value.Ints(3, 621), "(field1 between [3, 621])"},
		{"strings", value.Strings("value1", "value2"), "(field1 between ['value1', 'value2'])"},
		{"floats", value.List{value.Float(5.972), value.Float(991.27)}, "(field1 between [5.972, 991.27])"},
		{"closed range", value.Closed(value.Int(27), value.Int(29)), "(field1 between [27, 29])"},
		{"open max", value.Range{Min: value.Int(27), Max: value.Int(29), MaxOpen: true}, "(field1 between [27, 29[)"},
		{"open min", value.Range{Min: value.Int(27), Max: value.Int(29), MinOpen: true}, "(field1 between ]27, 29])"},
		{"open both", value.Range{Min: value.Int(27), Max: value.Int(29), MinOpen: true, MaxOpen: true}, "(field1 between ]27, 29[)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Between("field1", tc.operand).Serialize()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSerialize_BetweenMalformed(t *testing.T) {
	operands := []value.Value{
		value.Int(3),
		value.Ints(3),
		value.Ints(1, 2, 3),
		value.List{},
		value.Range{Min: value.Int(1)},
		value.List{value.Null{}, value.Int(2)},
	}

	for _, operand := range operands {
		_, err := Between("f1", operand).Serialize()
		require.Error(t, err, "operand %s", value.Wrap(operand))
		assert.ErrorIs(t, err, ErrMalformedOperand)
		assert.NotErrorIs(t, err, ErrMissingOperand)
		assert.Equal(t, "between expects two bounds.", err.Error())
	}
}

func TestSerialize_Quality(t *testing.T) {
	got, err := Quality("f1", value.String(QualityInvalid)).Serialize()
	require.NoError(t, err)
	assert.Equal(t, "(f1 is invalid)", got)

	got, err = Quality("f1", value.Strings(QualityInvalid, QualityEmpty)).Serialize()
	require.NoError(t, err)
	assert.Equal(t, "((f1 is invalid) or (f1 is empty))", got)

	got, err = Quality("*", value.Strings(QualityValid, QualityInvalid, QualityEmpty)).Serialize()
	require.NoError(t, err)
	assert.Equal(t, "((* is valid) or (* is invalid) or (* is empty))", got)

	_, err = Quality("f1", value.List{}).Serialize()
	require.EqualError(t, err, "quality expects at least one keyword.")
	assert.ErrorIs(t, err, ErrMalformedOperand)

	_, err = Quality("f1", nil).Serialize()
	require.EqualError(t, err, "quality does not allow empty.")
}

func TestSerialize_StringQuotesNotEscaped(t *testing.T) {
	// Embedded quotes pass through verbatim; Lint flags them.
	got, err := Equal("name", value.String("O'Brien")).Serialize()
	require.NoError(t, err)
	assert.Equal(t, "(name = 'O'Brien')", got)
}

func TestSerialize_UnknownKind(t *testing.T) {
	_, err := New(Kind(99), "f1", value.Int(1)).Serialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator")

	_, err = Operator{}.Serialize()
	require.Error(t, err)
}

func TestSerialize_Concurrent(t *testing.T) {
	op := In("f1", value.Ints(666, 777))
	want, err := op.Serialize()
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = op.Serialize()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "(f1 >= 666)", GreaterThanOrEqual("f1", value.Int(666)).String())
	assert.Equal(t, "GreaterThanOrEqual(f1): >= does not allow empty.", GreaterThanOrEqual("f1", nil).String())
}
