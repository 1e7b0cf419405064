package logger

// Standard field names for structured logging across tql.
const (
	FieldComponent = "component"
	FieldPath      = "path"
	FieldName      = "name"
	FieldCount     = "count"
	FieldOperator  = "operator"
	FieldField     = "field"
	FieldID        = "id"
	FieldError     = "error"
	FieldErrorCode = "error_code"
	FieldVersion   = "version"
)
