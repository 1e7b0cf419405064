package tql

import "errors"

var (
	// ErrMissingOperand matches every *MissingOperandError via errors.Is.
	ErrMissingOperand = errors.New("missing operand")

	// ErrMalformedOperand matches every *MalformedOperandError via errors.Is.
	ErrMalformedOperand = errors.New("malformed operand")
)

// MissingOperandError is returned by Serialize when a kind that requires
// an operand was built without one.
type MissingOperandError struct {
	Symbol string
}

func (e *MissingOperandError) Error() string {
	return e.Symbol + " does not allow empty."
}

// Is reports whether target is ErrMissingOperand.
func (e *MissingOperandError) Is(target error) bool {
	return target == ErrMissingOperand
}

// MalformedOperandError is returned by Serialize when an operand is present
// but has a shape the kind cannot render (a one-bound between, an empty
// quality list).
type MalformedOperandError struct {
	Symbol string
	Reason string
}

func (e *MalformedOperandError) Error() string {
	return e.Symbol + " " + e.Reason
}

// Is reports whether target is ErrMalformedOperand.
func (e *MalformedOperandError) Is(target error) bool {
	return target == ErrMalformedOperand
}
