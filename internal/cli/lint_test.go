package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_Clean(t *testing.T) {
	out, err := runRoot(t, "lint", writeYAML(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "✓ No warnings in 3 predicate(s)\n", out)
}

func TestLint_Warnings(t *testing.T) {
	path := writeYAML(t, `predicates:
  - name: quote
    op: Equal
    field: name
    value: "O'Brien"
  - name: backwards
    op: Between
    field: n
    value: [10, 1]
`)

	out, err := runRoot(t, "lint", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "⚠ 2 warning(s)")
	assert.Contains(t, out, "contains a single quote")
	assert.Contains(t, out, "bounds are descending: 10 > 1")
}

func TestLint_JSON(t *testing.T) {
	path := writeYAML(t, `predicates:
  - name: empty-in
    op: In
    field: f
    value: []
`)

	out, err := runRoot(t, "--format", "json", "lint", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, false, data["clean"])
	assert.Equal(t, []any{"#0 In(f): empty in list matches nothing"}, data["warnings"])
}

func TestLint_BuildErrors(t *testing.T) {
	path := writeYAML(t, `predicates:
  - name: bad
    op: Nope
    field: f
`)

	out, err := runRoot(t, "lint", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E101")
}
