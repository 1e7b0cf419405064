package store

import (
	"database/sql"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/tql/internal/errors"
	"github.com/roach88/tql/internal/tql"
	"github.com/roach88/tql/internal/value"
)

// FingerprintDomain separates filter fingerprints from other hashes.
const FingerprintDomain = "tql/filter/v1"

var (
	// ErrNotFound is returned when no filter has the requested name.
	ErrNotFound = errors.New("filter not found")

	// ErrEmptyName is returned when a filter name is blank.
	ErrEmptyName = errors.New("filter name is empty")
)

// Filter is a saved, named list of predicates.
type Filter struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Fingerprint string         `json:"fingerprint"`
	Revision    int64          `json:"revision"`
	Predicates  []tql.Operator `json:"-"`

	// Fragments holds the text each predicate serialized to when saved.
	Fragments []string `json:"fragments"`

	// Duplicates names other filters with the same fingerprint. Only Save
	// sets it.
	Duplicates []string `json:"duplicates,omitempty"`
}

// Summary describes a saved filter without its predicates.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
	Revision    int64  `json:"revision"`
	Count       int    `json:"count"`
}

// NormalizeName trims and NFC normalises a filter name.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// row is one predicate ready to be written.
type row struct {
	kind     string
	field    string
	operand  sql.NullString
	fragment string
}

// encodePredicates serializes every operator and encodes its operand. It
// fails on the first operator that does not serialize.
func encodePredicates(ops []tql.Operator) ([]row, string, error) {
	rows := make([]row, 0, len(ops))
	parts := make([][]byte, 0, 3*len(ops))

	for i, op := range ops {
		fragment, err := op.Serialize()
		if err != nil {
			return nil, "", errors.Wrapf(err, "predicate #%d", i)
		}

		r := row{kind: op.Kind().String(), field: op.Field(), fragment: fragment}
		var operandJSON []byte
		if op.Operand() != nil {
			operandJSON, err = value.MarshalCanonical(op.Operand())
			if err != nil {
				return nil, "", errors.Wrapf(err, "predicate #%d operand", i)
			}
			r.operand = sql.NullString{String: string(operandJSON), Valid: true}
		}

		rows = append(rows, r)
		parts = append(parts, []byte(r.kind), []byte(r.field), operandJSON)
	}

	return rows, value.Fingerprint(FingerprintDomain, parts...), nil
}

// decodePredicate rebuilds an operator from its stored columns.
func decodePredicate(kind, field string, operand sql.NullString) (tql.Operator, error) {
	var v value.Value
	if operand.Valid {
		var err error
		v, err = value.UnmarshalJSON([]byte(operand.String))
		if err != nil {
			return tql.Operator{}, errors.Wrapf(err, "decode operand of %s(%s)", kind, field)
		}
	}

	op, err := tql.Build(kind, field, v)
	if err != nil {
		return tql.Operator{}, errors.Wrap(err, "decode predicate")
	}
	return op, nil
}
