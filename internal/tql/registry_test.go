package tql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tql/internal/value"
)

func TestRegistry_CoversEveryKind(t *testing.T) {
	require.Len(t, registry, len(Kinds()))

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			ctor, ok := Lookup(k.String())
			require.True(t, ok, "kind %s not registered", k)

			op := ctor("f1", value.Int(1))
			assert.Equal(t, k, op.Kind())
			assert.Equal(t, "f1", op.Field())
			assert.Equal(t, value.Int(1), op.Operand())
		})
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	require.Len(t, names, len(registry))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "In")
	assert.Contains(t, names, "GreaterThanOrEqual")
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("NotAnOperator")
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	op, err := Build("In", "f1", value.Ints(666, 777))
	require.NoError(t, err)

	got, err := op.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "(f1 in [666, 777])", got)

	_, err = Build("in", "f1", value.Int(1))
	require.Error(t, err, "names are case sensitive")
	assert.Contains(t, err.Error(), `unknown operator "in"`)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKind("Nope")
	require.Error(t, err)
	assert.Equal(t, KindUnknown, k)
}

func TestKindDeclarations(t *testing.T) {
	testCases := []struct {
		kind       Kind
		symbol     string
		hasOperand bool
	}{
		{KindEqual, "=", true},
		{KindUnequal, "!=", true},
		{KindGreaterThan, ">", true},
		{KindGreaterThanOrEqual, ">=", true},
		{KindLessThan, "<", true},
		{KindLessThanOrEqual, "<=", true},
		{KindIn, "in", true},
		{KindContains, "contains", true},
		{KindContainsIgnoreCase, "containsIgnoreCase", true},
		{KindComplies, "complies", true},
		{KindWordComplies, "wordComplies", true},
		{KindMatch, "~", true},
		{KindBetween, "between", true},
		{KindQuality, "quality", true},
		{KindEmpty, "is empty", false},
		{KindValid, "is valid", false},
		{KindInvalid, "is invalid", false},
		{KindIsNull, "is null", false},
	}

	require.Len(t, testCases, len(Kinds()))
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.True(t, tc.kind.Valid())
			assert.Equal(t, tc.symbol, tc.kind.Symbol())
			assert.Equal(t, tc.hasOperand, tc.kind.HasOperand())
		})
	}
}

func TestKind_Unknown(t *testing.T) {
	assert.False(t, KindUnknown.Valid())
	assert.Equal(t, "Kind(0)", KindUnknown.String())
	assert.Equal(t, "", KindUnknown.Symbol())
	assert.False(t, KindUnknown.HasOperand())
}
