package myinvois

import (
	"fmt"
	"strings"
)

// AuthError represents a failed token acquisition
type AuthError struct {
	Status  int
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("authentication failed (status=%d): %s (%v)", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("authentication failed (status=%d): %s", e.Status, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new auth error
func NewAuthError(status int, message string, cause error) *AuthError {
	return &AuthError{Status: status, Message: message, Cause: cause}
}

// TransportError represents an API call that failed before a usable response
type TransportError struct {
	Op     string
	Status int
	Body   string
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s failed (status=%d): %s", e.Op, e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NewTransportError creates a new transport error
func NewTransportError(op string, status int, body string, cause error) *TransportError {
	return &TransportError{Op: op, Status: status, Body: body, Cause: cause}
}

// RejectionError reports documents the authority rejected within an otherwise
// successful submission
type RejectionError struct {
	SubmissionUID string
	Rejected      []RejectedDocument
}

func (e *RejectionError) Error() string {
	codes := make([]string, len(e.Rejected))
	for i, r := range e.Rejected {
		codes[i] = r.InvoiceCodeNumber
	}
	return fmt.Sprintf("submission %s rejected %d document(s): %s",
		e.SubmissionUID, len(e.Rejected), strings.Join(codes, ", "))
}

// NewRejectionError creates a new rejection error
func NewRejectionError(uid string, rejected []RejectedDocument) *RejectionError {
	return &RejectionError{SubmissionUID: uid, Rejected: rejected}
}
