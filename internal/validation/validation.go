package validation

import "strings"

// Error reports required fields that were missing or malformed on a write.
// Operations return it before any persistence call is made.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func NewError(fields ...string) *Error {
	return &Error{Fields: fields}
}
