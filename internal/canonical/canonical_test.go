package canonical_test

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/myinvois-gateway/internal/canonical"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

func sampleTree() *wire.Branch {
	return wire.NewBranch().
		Append("ID", wire.Leaf{Value: "INV-001"}).
		Append("DocumentCurrencyCode", wire.Leaf{Value: "MYR"})
}

func TestCanonicalize(t *testing.T) {
	doc, err := canonical.Canonicalize(sampleTree())
	require.NoError(t, err)

	assert.Equal(t,
		`{"Invoice":[{"ID":[{"_":"INV-001"}],"DocumentCurrencyCode":[{"_":"MYR"}]}]}`,
		string(doc.Raw))
	assert.Regexp(t, hexRe, doc.Hash)
}

func TestCanonicalize_HashMatchesRaw(t *testing.T) {
	doc, err := canonical.Canonicalize(sampleTree())
	require.NoError(t, err)

	sum := sha256.Sum256(doc.Raw)
	assert.Equal(t, hex.EncodeToString(sum[:]), doc.Hash)
}

func TestCanonicalize_Deterministic(t *testing.T) {
	first, err := canonical.Canonicalize(sampleTree())
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := canonical.Canonicalize(sampleTree())
		require.NoError(t, err)
		assert.Equal(t, first.Hash, again.Hash)
		assert.Equal(t, first.Encoded, again.Encoded)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	doc, err := canonical.Canonicalize(sampleTree())
	require.NoError(t, err)

	raw, err := canonical.Decode(doc.Encoded)
	require.NoError(t, err)
	assert.Equal(t, doc.Raw, raw)

	// Re-hashing the decoded bytes reproduces the original digest.
	assert.Equal(t, doc.Hash, canonical.HashBytes(raw))
}

func TestDecode_InvalidBase64(t *testing.T) {
	_, err := canonical.Decode("not base64!!!")
	require.Error(t, err)
}

func TestCanonicalize_UnsupportedValue(t *testing.T) {
	tree := wire.NewBranch().Append("ID", wire.Leaf{Value: make(chan int)})
	_, err := canonical.Canonicalize(tree)
	require.Error(t, err)
}

func BenchmarkCanonicalize(b *testing.B) {
	tree := sampleTree()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := canonical.Canonicalize(tree); err != nil {
			b.Fatal(err)
		}
	}
}
