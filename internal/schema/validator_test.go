package schema_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

func TestValidate_CollectsAllViolations(t *testing.T) {
	rules := []schema.Rule{
		{Name: "ID", Required: true, Leaf: &schema.LeafRule{
			Label: "ID", Kind: schema.KindString, Required: true, MaxLen: 5,
		}},
		{Name: "Code", Required: true, Leaf: &schema.LeafRule{
			Label: "Code", Kind: schema.KindString,
			Enum: code.NewList("Code", "01", "02"),
		}},
	}

	tree := wire.NewBranch().
		Append("ID", wire.Leaf{Value: "TOO-LONG-VALUE"}).
		Append("Code", wire.Leaf{Value: "99"})

	_, errs := schema.Validate(tree, rules)
	require.Len(t, errs, 2)
	assert.Equal(t, "Invoice.ID", errs[0].Path)
	assert.Equal(t, schema.ErrFormat, errs[0].Kind)
	assert.Equal(t, "Invoice.Code", errs[1].Path)
	assert.Equal(t, schema.ErrCodeLookup, errs[1].Kind)
	assert.Equal(t, "Invalid Code", errs[1].Message)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	rules := []schema.Rule{
		{Name: "ID", Required: true, Leaf: &schema.LeafRule{
			Label: "ID", Kind: schema.KindString, Required: true,
		}},
	}

	_, errs := schema.Validate(wire.NewBranch(), rules)
	require.Len(t, errs, 1)
	assert.Equal(t, schema.ErrStructural, errs[0].Kind)
	assert.Equal(t, "ID is required", errs[0].Message)
}

func TestValidate_EmptySequencePasses(t *testing.T) {
	rules := []schema.Rule{
		{Name: "AllowanceCharge", Required: true, Branch: []schema.Rule{
			{Name: "Amount", Required: true, Leaf: &schema.LeafRule{
				Label: "Amount", Kind: schema.KindNumber, Required: true,
			}},
		}},
	}

	tree := wire.NewBranch().Append("AllowanceCharge")
	_, errs := schema.Validate(tree, rules)
	assert.Empty(t, errs)
}

func TestValidate_EmptySequenceBelowMinItems(t *testing.T) {
	rules := []schema.Rule{
		{Name: "AddressLine", Required: true, MinItems: 1, Branch: []schema.Rule{
			{Name: "Line", Required: true, Leaf: &schema.LeafRule{
				Label: "Address Line", Kind: schema.KindString,
			}},
		}},
	}

	tree := wire.NewBranch().Append("AddressLine")
	_, errs := schema.Validate(tree, rules)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invoice.AddressLine", errs[0].Path)
	assert.Equal(t, schema.ErrStructural, errs[0].Kind)
	assert.Equal(t, "AddressLine must contain at least 1 entries", errs[0].Message)
}

func TestValidate_RequiredAttr(t *testing.T) {
	rules := []schema.Rule{
		{Name: "ID", Required: true, Leaf: &schema.LeafRule{
			Label: "Identification", Kind: schema.KindString, AllowEmpty: true,
			Attrs: []schema.AttrRule{{
				Name: "schemeID", Label: "Field Type", Required: true, AllowEmpty: true,
				Enum: code.NewList("Field Type", "TIN", "BRN"),
			}},
		}},
	}

	// Attribute absent entirely.
	tree := wire.NewBranch().Append("ID", wire.Leaf{Value: "C2584563222"})
	_, errs := schema.Validate(tree, rules)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invoice.ID.schemeID", errs[0].Path)
	assert.Equal(t, "Field Type is required", errs[0].Message)

	// Attribute present but empty is accepted.
	tree = wire.NewBranch().Append("ID", wire.Leaf{
		Value: "C2584563222",
		Attrs: []wire.Attr{{Name: "schemeID", Value: ""}},
	})
	_, errs = schema.Validate(tree, rules)
	assert.Empty(t, errs)
}

func TestValidate_UnknownFieldRejected(t *testing.T) {
	rules := []schema.Rule{
		{Name: "ID", Leaf: &schema.LeafRule{Label: "ID", Kind: schema.KindString}},
	}

	tree := wire.NewBranch().
		Append("ID", wire.Leaf{Value: "x"}).
		Append("Bogus", wire.Leaf{Value: "y"})

	_, errs := schema.Validate(tree, rules)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invoice.Bogus", errs[0].Path)
	assert.Equal(t, "Bogus is not allowed", errs[0].Message)
}

func TestValidate_DefaultsApplied(t *testing.T) {
	rules := []schema.Rule{
		{Name: "IssueDate", Required: true, Leaf: &schema.LeafRule{
			Label:   "Issue Date",
			Kind:    schema.KindString,
			Pattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
			Default: func() any { return "2024-06-01" },
		}},
	}

	tree := wire.NewBranch().Append("IssueDate", wire.Leaf{Value: ""})
	out, errs := schema.Validate(tree, rules)
	require.Empty(t, errs)

	nodes, ok := out.Field("IssueDate")
	require.True(t, ok)
	leaf := nodes[0].(wire.Leaf)
	assert.Equal(t, "2024-06-01", leaf.Value)

	// Input tree untouched.
	orig, _ := tree.Field("IssueDate")
	assert.Equal(t, "", orig[0].(wire.Leaf).Value)
}

func TestValidate_AttrDefaultAndConst(t *testing.T) {
	rules := []schema.Rule{
		{Name: "InvoiceTypeCode", Required: true, Leaf: &schema.LeafRule{
			Label: "Invoice Type Code", Kind: schema.KindString,
			Attrs: []schema.AttrRule{{
				Name: "listVersionID", Label: "Version", Required: true, Default: "1.0",
			}},
		}},
	}

	tree := wire.NewBranch().Append("InvoiceTypeCode", wire.Leaf{Value: "01"})
	out, errs := schema.Validate(tree, rules)
	require.Empty(t, errs)

	nodes, _ := out.Field("InvoiceTypeCode")
	v, ok := nodes[0].(wire.Leaf).Attr("listVersionID")
	require.True(t, ok)
	assert.Equal(t, "1.0", v)
}

func TestValidate_SchemeConditionalLength(t *testing.T) {
	rules := []schema.Rule{
		{Name: "ID", Required: true, Leaf: &schema.LeafRule{
			Label:         "Identification",
			Kind:          schema.KindString,
			AllowEmpty:    true,
			AllowLiterals: []string{"NA"},
			MaxLen:        12,
			CaseAttr:      "schemeID",
			CaseMaxLen:    map[string]int{"BRN": 20, "SST": 35, "TTX": 17},
		}},
	}

	tests := []struct {
		name   string
		id     string
		scheme string
		valid  bool
	}{
		{"BRN within 20", "12345678901234567890", "BRN", true},
		{"BRN over 20", "123456789012345678901", "BRN", false},
		{"SST within 35", "A12-3456-78901234;A12-3456-78901235", "SST", true},
		{"TTX over 17", "123456789012345678", "TTX", false},
		{"TIN falls back to 12", "1234567890123", "TIN", false},
		{"TIN within 12", "123456789012", "TIN", true},
		{"NA always accepted", "NA", "BRN", true},
		{"empty always accepted", "", "SST", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := wire.NewBranch().Append("ID", wire.Leaf{
				Value: tt.id,
				Attrs: []wire.Attr{{Name: "schemeID", Value: tt.scheme}},
			})
			_, errs := schema.Validate(tree, rules)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Equal(t, schema.ErrConditional, errs[0].Kind)
			}
		})
	}
}

func TestValidate_KindChecks(t *testing.T) {
	rules := []schema.Rule{
		{Name: "Quantity", Required: true, Leaf: &schema.LeafRule{
			Label: "Quantity", Kind: schema.KindInteger,
		}},
		{Name: "Flag", Required: true, Leaf: &schema.LeafRule{
			Label: "Flag", Kind: schema.KindBool,
		}},
	}

	tree := wire.NewBranch().
		Append("Quantity", wire.Leaf{Value: 2.5}).
		Append("Flag", wire.Leaf{Value: "yes"})

	_, errs := schema.Validate(tree, rules)
	require.Len(t, errs, 2)
	assert.Equal(t, "Quantity must be an integer", errs[0].Message)
	assert.Equal(t, "Flag must be true or false", errs[1].Message)
}

func TestValidate_NestedPaths(t *testing.T) {
	rules := []schema.Rule{
		{Name: "PostalAddress", Required: true, Branch: []schema.Rule{
			{Name: "AddressLine", Required: true, MinItems: 1, Branch: []schema.Rule{
				{Name: "Line", Required: true, Leaf: &schema.LeafRule{
					Label: "Address Line", Kind: schema.KindString, MaxLen: 5,
				}},
			}},
		}},
	}

	addr := wire.NewBranch().Append("AddressLine",
		wire.NewBranch().Append("Line", wire.Leaf{Value: "ok"}),
		wire.NewBranch().Append("Line", wire.Leaf{Value: "way too long"}),
	)
	tree := wire.NewBranch().Append("PostalAddress", addr)

	_, errs := schema.Validate(tree, rules)
	require.Len(t, errs, 1)
	assert.Equal(t, "Invoice.PostalAddress.AddressLine[1].Line", errs[0].Path)
}

func TestValidate_ShapeMismatch(t *testing.T) {
	rules := []schema.Rule{
		{Name: "ID", Required: true, Leaf: &schema.LeafRule{
			Label: "ID", Kind: schema.KindString,
		}},
	}

	tree := wire.NewBranch().Append("ID", wire.NewBranch())
	_, errs := schema.Validate(tree, rules)
	require.Len(t, errs, 1)
	assert.Equal(t, schema.ErrStructural, errs[0].Kind)
}
