package wellness

import "fmt"

// ValidationError reports malformed or out-of-range input to any of the
// calculation functions. Callers detect it with errors.As and should
// re-prompt the user; it is never worth retrying automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
