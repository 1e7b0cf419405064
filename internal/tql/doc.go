// Package tql builds predicate fragments for TQL filter expressions.
//
// An Operator pairs a field with an optional operand and a Kind. Serialize
// renders it into a canonical fragment such as "(f1 >= 666)" that an
// external composition layer combines with and/or into a full query.
//
// KIND TABLE:
//
// Every Kind has one entry in a fixed table holding its registry name, its
// TQL symbol, whether it requires an operand, and the renderer used once the
// operand check has passed. Exactly one rendering shape applies per kind:
//
//	shape            kinds                                   example
//	-----            -----                                   -------
//	single operand   = != > >= < <= contains ... ~           (f1 >= 666)
//	multi value      in, between, quality                    (f1 in [666, 777])
//	zero operand     is empty, is valid, is invalid, is null (f1 is empty)
//
// LAZY VALIDATION:
//
// Constructors never fail. A kind that requires an operand reports a
// *MissingOperandError from Serialize when none was given:
//
//	op := tql.GreaterThanOrEqual("f1", nil) // fine
//	_, err := op.Serialize()                // ">= does not allow empty."
//
// REGISTRY:
//
// Lookup, Names and Build map kind names ("In", "GreaterThanOrEqual", ...)
// to constructors. They are the lookup used by the definition loader, the store
// and the command line.
//
// Operators are immutable values; they can be shared and serialized from
// any number of goroutines.
package tql
