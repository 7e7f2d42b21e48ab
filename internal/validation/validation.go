// Package validation checks API request bodies before they reach the service
// layer. Each entity has a ValidateCreateX/ValidateUpdateX pair returning an
// *Error carrying per-field messages.
package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidUUID is returned when an identifier is not a valid UUID.
var ErrInvalidUUID = fmt.Errorf("invalid UUID format")

// Error aggregates field-level validation failures.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}
