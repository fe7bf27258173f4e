// Package einvoice is the public entry point of the gateway: it assembles the
// flat invoice payload into the MyInvois wire format, validates it against the
// declarative schema, canonicalizes it and optionally submits it to the
// invoicing API.
package einvoice

import (
	"encoding/json"

	"github.com/rezonia/myinvois-gateway/internal/document"
	"github.com/rezonia/myinvois-gateway/internal/schema"
)

// Input re-exports the flat submission payload.
type Input = document.Input

// FieldError re-exports one validation violation.
type FieldError = schema.FieldError

// ValidationError re-exports the aggregated validation failure.
type ValidationError = schema.ValidationError

// Document is the fully prepared submission artifact for one invoice.
type Document struct {
	// CodeNumber is the supplier-assigned invoice ID.
	CodeNumber string `json:"codeNumber"`
	// Canonical is the canonical root-wrapped JSON.
	Canonical json.RawMessage `json:"canonical"`
	// Hash is the lowercase hex SHA-256 of the canonical bytes.
	Hash string `json:"hash"`
	// Encoded is the base64 transport encoding of the canonical bytes.
	Encoded string `json:"encoded"`
}
