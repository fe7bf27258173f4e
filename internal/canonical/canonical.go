// Package canonical turns an assembled document tree into the submission
// artifacts: the canonical byte string, its SHA-256 digest and the base64
// transport encoding. The same tree always canonicalizes to the same bytes,
// so the digest is stable across processes.
package canonical

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// Document bundles the canonical form of one invoice.
type Document struct {
	// Raw is the canonical JSON, root-wrapped as {"Invoice":[...]}.
	Raw []byte
	// Hash is the lowercase hex SHA-256 of Raw.
	Hash string
	// Encoded is the standard base64 encoding of Raw, as submitted.
	Encoded string
}

// Canonicalize wraps the branch under the Invoice root and computes the
// digest and transport encoding. It fails only when the tree holds a leaf
// value the wire codec cannot render.
func Canonicalize(root *wire.Branch) (*Document, error) {
	wrapped := wire.NewBranch().Append("Invoice", root)
	raw, err := wrapped.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("canonicalize document: %w", err)
	}
	sum := sha256.Sum256(raw)
	return &Document{
		Raw:     raw,
		Hash:    hex.EncodeToString(sum[:]),
		Encoded: base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// Decode reverses the transport encoding, returning the canonical bytes.
func Decode(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode document payload: %w", err)
	}
	return raw, nil
}

// HashBytes computes the lowercase hex SHA-256 of raw canonical bytes.
func HashBytes(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
