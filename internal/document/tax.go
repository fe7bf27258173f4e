package document

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// TaxCategory classifies an amount under a tax type. The exemption reason is
// emitted only when set.
type TaxCategory struct {
	ID              string
	Scheme          TaxScheme
	ExemptionReason string
}

func (tc TaxCategory) ToWire() *wire.Branch {
	b := wire.NewBranch().
		Append("ID", wire.Leaf{Value: tc.ID}).
		Append("TaxScheme", tc.Scheme.ToWire())
	if tc.ExemptionReason != "" {
		b.Append("TaxExemptionReason", wire.Leaf{Value: tc.ExemptionReason})
	}
	return b
}

// TaxCategorySchema validates the category code against the tax type registry.
func TaxCategorySchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{
			Name:     "ID",
			Required: true,
			Leaf: &schema.LeafRule{
				Label:      "Tax Type Code",
				Kind:       schema.KindString,
				Required:   true,
				AllowEmpty: true,
				Enum:       c.TaxType,
			},
		},
		{Name: "TaxScheme", Required: true, Branch: TaxSchemeSchema()},
		{
			Name: "TaxExemptionReason",
			Leaf: &schema.LeafRule{
				Label:  "Details of Tax Exemption",
				Kind:   schema.KindString,
				MaxLen: 300,
			},
		},
	}
}

// TaxSubtotal is one tax bracket within a total. Percent is optional.
type TaxSubtotal struct {
	TaxableAmount Amount
	TaxAmount     Amount
	Category      TaxCategory
	Percent       *decimal.Decimal
}

func (ts TaxSubtotal) ToWire() *wire.Branch {
	b := wire.NewBranch().
		Append("TaxableAmount", ts.TaxableAmount.ToWire()).
		Append("TaxAmount", ts.TaxAmount.ToWire()).
		Append("TaxCategory", ts.Category.ToWire())
	if ts.Percent != nil {
		b.Append("Percent", wire.Leaf{Value: *ts.Percent})
	}
	return b
}

// TaxSubtotalSchema is the rule set for one subtotal entry.
func TaxSubtotalSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		amountRule(c, "TaxableAmount", "Taxable Amount"),
		amountRule(c, "TaxAmount", "Tax Amount"),
		{Name: "TaxCategory", Required: true, Branch: TaxCategorySchema(c)},
		{
			Name: "Percent",
			Leaf: &schema.LeafRule{Label: "Percent", Kind: schema.KindNumber},
		},
	}
}

// TaxTotal aggregates subtotals under one tax amount. Line-level and
// document-level totals share this shape but are supplied and validated
// independently; no aggregation happens here.
type TaxTotal struct {
	TaxAmount Amount
	Subtotals []TaxSubtotal
}

func (tt TaxTotal) ToWire() *wire.Branch {
	b := wire.NewBranch().Append("TaxAmount", tt.TaxAmount.ToWire())
	subs := make([]wire.Node, len(tt.Subtotals))
	for i, s := range tt.Subtotals {
		subs[i] = s.ToWire()
	}
	b.Append("TaxSubtotal", subs...)
	return b
}

// TaxTotalSchema is the rule set for a tax total section.
func TaxTotalSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		amountRule(c, "TaxAmount", "Tax Amount"),
		{Name: "TaxSubtotal", Required: true, Branch: TaxSubtotalSchema(c)},
	}
}
