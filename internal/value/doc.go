// Package value provides the operand types used by TQL predicates.
//
// This package contains the value model and its textual forms only. The tql
// package imports value; value imports nothing internal.
//
// Key design constraints:
//   - Value is sealed: only Null, String, Int, Float, Bool, List and Range
//     implement it
//   - A nil Value means "no operand"; Null is treated the same way
//   - Wrap is the single place that decides how an operand is written into
//     a fragment
//   - Canonical JSON (MarshalCanonical) is key sorted and keeps strings
//     byte for byte, so a stored operand reloads to the same fragment
package value
