package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already exists")
	ErrCategoryInUse     = errors.New("category still referenced by items")
)

// ValidationError reports the first offending field of a request together
// with a message key describing the rule it broke.
type ValidationError struct {
	Field  string
	Reason string
	Params map[string]any
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) With(key string, value any) *ValidationError {
	if e.Params == nil {
		e.Params = make(map[string]any)
	}
	e.Params[key] = value
	return e
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
