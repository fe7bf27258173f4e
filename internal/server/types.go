package server

import (
	"encoding/json"

	"github.com/rezonia/myinvois-gateway/internal/myinvois"
	"github.com/rezonia/myinvois-gateway/internal/schema"
)

// BuildResponse is the response for the build endpoint
type BuildResponse struct {
	CodeNumber string          `json:"code_number"`
	Document   json.RawMessage `json:"document"`
	Hash       string          `json:"hash"`
	Encoded    string          `json:"encoded"`
}

// ValidationResponse is the response for the validate endpoint
type ValidationResponse struct {
	Valid      bool                `json:"valid"`
	Violations []schema.FieldError `json:"violations,omitempty"`
}

// SubmitResponse is the response for the submit endpoint
type SubmitResponse struct {
	SubmissionUID string                      `json:"submission_uid"`
	Accepted      []myinvois.AcceptedDocument `json:"accepted"`
	Rejected      []myinvois.RejectedDocument `json:"rejected,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
