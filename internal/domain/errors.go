package domain

import (
	"fmt"
	"strings"
)

// Field error types, named after the codes clients already see for these checks.
const (
	ErrTypeMissing        = "missing"
	ErrTypeStringType     = "string_type"
	ErrTypeStringTooShort = "string_too_short"
	ErrTypeStringTooLong  = "string_too_long"
	ErrTypeEnum           = "enum"
	ErrTypeJSONInvalid    = "json_invalid"
	ErrTypeModelType      = "model_attributes_type"
	ErrTypeUUIDParsing    = "uuid_parsing"
)

type FieldError struct {
	Location []string
	Message  string
	Type     string
}

func (fe FieldError) String() string {
	return strings.Join(fe.Location, ".") + ": " + fe.Message
}

// ValidationError collects every field that failed validation in one payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Add(fe FieldError) {
	e.Fields = append(e.Fields, fe)
}

// Err returns nil when nothing was collected, so callers can return it directly.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
