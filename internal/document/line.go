package document

import (
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// InvoiceItem describes the product or service on a line.
type InvoiceItem struct {
	ClassificationCode string
	Description        string
	OriginCountry      string
}

func (it InvoiceItem) ToWire() *wire.Branch {
	return wire.NewBranch().
		Append("CommodityClassification",
			wire.NewBranch().Append("ItemClassificationCode", wire.Leaf{
				Value: it.ClassificationCode,
				Attrs: []wire.Attr{{Name: "listID", Value: "CLASS"}},
			})).
		Append("Description", wire.Leaf{Value: it.Description}).
		Append("OriginCountry",
			wire.NewBranch().Append("IdentificationCode", wire.Leaf{Value: it.OriginCountry}))
}

// InvoiceItemSchema validates the classification code against the CLASS list.
func InvoiceItemSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{
			Name: "CommodityClassification",
			Branch: []schema.Rule{{
				Name: "ItemClassificationCode",
				Leaf: &schema.LeafRule{
					Label:    "Classification Code",
					Kind:     schema.KindString,
					Required: true,
					Enum:     c.Classification,
					Attrs: []schema.AttrRule{{
						Name:    "listID",
						Label:   "Classification List",
						Default: "CLASS",
					}},
				},
			}},
		},
		{
			Name: "Description",
			Leaf: &schema.LeafRule{
				Label:      "Description of Product or Service",
				Kind:       schema.KindString,
				Required:   true,
				AllowEmpty: true,
				MaxLen:     300,
			},
		},
		{
			Name: "OriginCountry",
			Branch: []schema.Rule{{
				Name: "IdentificationCode",
				Leaf: &schema.LeafRule{
					Label:      "Country Code",
					Kind:       schema.KindString,
					AllowEmpty: true,
					MaxLen:     3,
					Enum:       c.Country,
				},
			}},
		},
	}
}

// InvoiceLine is one billable line item. Its allowance charges and tax total
// are assembled and validated independently of the document-level sections.
type InvoiceLine struct {
	AllowanceCharges    []AllowanceCharge
	ID                  string
	Quantity            int64
	UnitCode            string
	Item                InvoiceItem
	ItemPriceExtension  Amount
	LineExtensionAmount Amount
	Price               Amount
	TaxTotal            TaxTotal
}

// ToWire renders the line sections in schema order.
func (l InvoiceLine) ToWire() *wire.Branch {
	b := wire.NewBranch()
	charges := make([]wire.Node, len(l.AllowanceCharges))
	for i, ac := range l.AllowanceCharges {
		charges[i] = ac.ToWire()
	}
	b.Append("AllowanceCharge", charges...)
	b.Append("ID", wire.Leaf{Value: l.ID})
	b.Append("InvoicedQuantity", wire.Leaf{
		Value: l.Quantity,
		Attrs: []wire.Attr{{Name: "unitCode", Value: l.UnitCode}},
	})
	b.Append("Item", l.Item.ToWire())
	b.Append("ItemPriceExtension",
		wire.NewBranch().Append("Amount", l.ItemPriceExtension.ToWire()))
	b.Append("LineExtensionAmount", l.LineExtensionAmount.ToWire())
	b.Append("Price",
		wire.NewBranch().Append("PriceAmount", l.Price.ToWire()))
	b.Append("TaxTotal", l.TaxTotal.ToWire())
	return b
}

// InvoiceLineSchema is the rule set for one invoice line.
func InvoiceLineSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{Name: "AllowanceCharge", Branch: AllowanceChargeSchema(c)},
		{
			Name:     "ID",
			Required: true,
			Leaf: &schema.LeafRule{
				Label:    "ID",
				Kind:     schema.KindString,
				Required: true,
			},
		},
		{
			Name:     "InvoicedQuantity",
			Required: true,
			Leaf: &schema.LeafRule{
				Label: "Quantity",
				Kind:  schema.KindInteger,
				Attrs: []schema.AttrRule{{
					Name:     "unitCode",
					Label:    "Unit of Measurement",
					Required: true,
					Enum:     c.UnitOfMeasure,
				}},
			},
		},
		{Name: "Item", Required: true, Branch: InvoiceItemSchema(c)},
		{
			Name:     "ItemPriceExtension",
			Required: true,
			Branch:   []schema.Rule{amountRule(c, "Amount", "Item Price Extension")},
		},
		amountRule(c, "LineExtensionAmount", "Line Extension Amount"),
		{
			Name:     "Price",
			Required: true,
			Branch:   []schema.Rule{amountRule(c, "PriceAmount", "Price Amount")},
		},
		{Name: "TaxTotal", Required: true, Branch: TaxTotalSchema(c)},
	}
}
