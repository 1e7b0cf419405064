package predfile

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// LoadError is a loader or compile failure with a stable code and, for CUE
// sources, the position of the offending value.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants, shared with the CLI.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No definition files found
	ErrCodeLoadFailed  = "E004" // CUE load failed or unsupported file
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeParseFailed = "E008" // YAML parse error

	// Definition errors
	ErrCodeUnknownOperator = "E101" // op missing or not registered
	ErrCodeMissingField    = "E102" // field missing
	ErrCodeInvalidValue    = "E103" // value cannot become an operand
	ErrCodeMissingOperand  = "E104" // operator requires a value
	ErrCodeMalformed       = "E105" // value has the wrong shape
	ErrCodeDuplicateName   = "E106" // name defined twice
	ErrCodeMissingName     = "E107" // name missing
)
