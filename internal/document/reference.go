package document

import (
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// InvoicePeriod is the billing period and frequency.
type InvoicePeriod struct {
	StartDate   string
	EndDate     string
	Description string
}

func (p InvoicePeriod) ToWire() *wire.Branch {
	return wire.NewBranch().
		Append("StartDate", wire.Leaf{Value: p.StartDate}).
		Append("EndDate", wire.Leaf{Value: p.EndDate}).
		Append("Description", wire.Leaf{Value: p.Description})
}

// InvoicePeriodSchema requires the period fields to be present but allows
// them empty.
func InvoicePeriodSchema() []schema.Rule {
	return []schema.Rule{
		{
			Name:     "StartDate",
			Required: true,
			Leaf: &schema.LeafRule{
				Label:      "Billing Period Start Date",
				Kind:       schema.KindString,
				AllowEmpty: true,
				Pattern:    dateRe,
				PatternMsg: "Billing Period Start Date must be in the format YYYY-MM-DD",
			},
		},
		{
			Name:     "EndDate",
			Required: true,
			Leaf: &schema.LeafRule{
				Label:      "Billing Period End Date",
				Kind:       schema.KindString,
				AllowEmpty: true,
				Pattern:    dateRe,
				PatternMsg: "Billing Period End Date must be in the format YYYY-MM-DD",
			},
		},
		{
			Name:     "Description",
			Required: true,
			Leaf: &schema.LeafRule{
				Label:      "Frequency of Billing",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     50,
			},
		},
	}
}

// BillingReference carries the bill reference number, wrapped in an
// AdditionalDocumentReference section as the schema requires.
type BillingReference struct {
	ID string
}

func (r BillingReference) ToWire() *wire.Branch {
	return wire.NewBranch().Append("AdditionalDocumentReference",
		wire.NewBranch().Append("ID", wire.Leaf{Value: r.ID}))
}

// BillingReferenceSchema caps the bill reference at 150 characters.
func BillingReferenceSchema() []schema.Rule {
	return []schema.Rule{{
		Name: "AdditionalDocumentReference",
		Branch: []schema.Rule{{
			Name: "ID",
			Leaf: &schema.LeafRule{
				Label:      "Bill Reference Number",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     150,
			},
		}},
	}}
}

// AdditionalDocumentReference names customs forms, FTA details or incoterms.
// DocumentType and DocumentDescription are emitted only when set.
type AdditionalDocumentReference struct {
	ID                  string
	DocumentType        string
	DocumentDescription string
}

func (r AdditionalDocumentReference) ToWire() *wire.Branch {
	b := wire.NewBranch().Append("ID", wire.Leaf{Value: r.ID})
	if r.DocumentType != "" {
		b.Append("DocumentType", wire.Leaf{Value: r.DocumentType})
	}
	if r.DocumentDescription != "" {
		b.Append("DocumentDescription", wire.Leaf{Value: r.DocumentDescription})
	}
	return b
}

// AdditionalDocumentReferenceSchema caps the reference at 1000 characters.
func AdditionalDocumentReferenceSchema() []schema.Rule {
	return []schema.Rule{
		{
			Name: "ID",
			Leaf: &schema.LeafRule{
				Label:      "ID",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     1000,
			},
		},
		{
			Name: "DocumentType",
			Leaf: &schema.LeafRule{
				Label:      "Document Type",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     300,
			},
		},
		{
			Name: "DocumentDescription",
			Leaf: &schema.LeafRule{
				Label:      "Document Description",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     300,
			},
		},
	}
}
