package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorKind classifies a field-level violation.
type ErrorKind int

const (
	// ErrStructural marks a missing required section or a shape mismatch.
	ErrStructural ErrorKind = iota
	// ErrFormat marks a pattern, length or type mismatch.
	ErrFormat
	// ErrCodeLookup marks a value absent from its code registry.
	ErrCodeLookup
	// ErrConditional marks a scheme-dependent constraint violation.
	ErrConditional
)

func (k ErrorKind) String() string {
	switch k {
	case ErrFormat:
		return "format"
	case ErrCodeLookup:
		return "code_lookup"
	case ErrConditional:
		return "conditional"
	default:
		return "structural"
	}
}

// MarshalJSON renders the kind as its string form.
func (k ErrorKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON parses the string form produced by MarshalJSON.
func (k *ErrorKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "format":
		*k = ErrFormat
	case "code_lookup":
		*k = ErrCodeLookup
	case "conditional":
		*k = ErrConditional
	case "structural":
		*k = ErrStructural
	default:
		return fmt.Errorf("unknown error kind %q", s)
	}
	return nil
}

// FieldError is one violation, naming the offending path in the wire tree.
type FieldError struct {
	Path    string    `json:"path"`
	Kind    ErrorKind `json:"kind"`
	Rule    string    `json:"rule"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationError aggregates every violation found in one validation pass.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("document validation failed: %s", e.Violations[0].Error())
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("document validation failed with %d violations: %s",
		len(e.Violations), strings.Join(msgs, "; "))
}

// NewValidationError wraps the collected violations, or returns nil when the
// pass found none.
func NewValidationError(violations []FieldError) *ValidationError {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
