// Package errors provides error handling for tql.
//
// It re-exports github.com/cockroachdb/errors so that wrapped errors carry
// stack traces and hints while remaining compatible with errors.Is and
// errors.As from the standard library.
//
// Usage:
//
//	if err := db.PingContext(ctx); err != nil {
//	    return errors.Wrap(err, "failed to ping database")
//	}
//
//	if errors.Is(err, sql.ErrNoRows) {
//	    // handle not found
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// User-facing hints
var (
	WithHint     = crdb.WithHint
	FlattenHints = crdb.FlattenHints
)

// Error inspection
var (
	Is = crdb.Is
	As = crdb.As
)
