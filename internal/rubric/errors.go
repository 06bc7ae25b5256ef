package rubric

import (
	"errors"
	"strings"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned when an input is rejected before any write.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// IsValidation reports whether err carries ValidationErrors.
func IsValidation(err error) bool {
	var v ValidationErrors
	return errors.As(err, &v)
}
