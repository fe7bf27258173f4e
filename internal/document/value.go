package document

import (
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// InvoiceID is the supplier-assigned document code number.
type InvoiceID struct {
	Value string
}

func NewInvoiceID(id string) InvoiceID { return InvoiceID{Value: id} }

func (v InvoiceID) ToWire() wire.Leaf { return wire.Leaf{Value: v.Value} }

// InvoiceIDSchema caps the code number at 50 characters.
func InvoiceIDSchema() *schema.LeafRule {
	return &schema.LeafRule{
		Label:    "Invoice ID",
		Kind:     schema.KindString,
		Required: true,
		MaxLen:   50,
	}
}

// IssueDate is the document issue date, YYYY-MM-DD.
type IssueDate struct {
	Value string
}

func NewIssueDate(d string) IssueDate { return IssueDate{Value: d} }

func (v IssueDate) ToWire() wire.Leaf { return wire.Leaf{Value: v.Value} }

// IssueDateSchema defaults an absent date to today (UTC) at validation time.
func IssueDateSchema() *schema.LeafRule {
	return &schema.LeafRule{
		Label:      "Issue Date",
		Kind:       schema.KindString,
		Required:   true,
		Pattern:    dateRe,
		PatternMsg: "Issue Date must be in the format YYYY-MM-DD",
		Default:    nowDate,
	}
}

// IssueTime is the document issue time, HH:MM:SSZ.
type IssueTime struct {
	Value string
}

func NewIssueTime(t string) IssueTime { return IssueTime{Value: t} }

func (v IssueTime) ToWire() wire.Leaf { return wire.Leaf{Value: v.Value} }

// IssueTimeSchema defaults an absent time to now (UTC) at validation time.
func IssueTimeSchema() *schema.LeafRule {
	return &schema.LeafRule{
		Label:      "Issue Time",
		Kind:       schema.KindString,
		Required:   true,
		Pattern:    timeRe,
		PatternMsg: "Issue Time must be in the format hh:mm:ssZ",
		Default:    nowTime,
	}
}

// InvoiceTypeCode carries the e-invoice type and schema version.
type InvoiceTypeCode struct {
	Code          string
	ListVersionID string
}

func NewInvoiceTypeCode(code, version string) InvoiceTypeCode {
	return InvoiceTypeCode{Code: code, ListVersionID: version}
}

func (v InvoiceTypeCode) ToWire() wire.Leaf {
	return wire.Leaf{
		Value: v.Code,
		Attrs: []wire.Attr{{Name: "listVersionID", Value: v.ListVersionID}},
	}
}

// InvoiceTypeCodeSchema validates the type against the registry and defaults
// the version to "1.0".
func InvoiceTypeCodeSchema(c *code.Set) *schema.LeafRule {
	return &schema.LeafRule{
		Label:    "Invoice Type Code",
		Kind:     schema.KindString,
		Required: true,
		MaxLen:   2,
		Enum:     c.InvoiceType,
		Attrs: []schema.AttrRule{{
			Name:     "listVersionID",
			Label:    "e-Invoice Version",
			Required: true,
			MaxLen:   5,
			Default:  "1.0",
		}},
	}
}

// CurrencyCode is the document-level currency.
type CurrencyCode struct {
	Value string
}

func NewCurrencyCode(cc string) CurrencyCode { return CurrencyCode{Value: cc} }

func (v CurrencyCode) ToWire() wire.Leaf { return wire.Leaf{Value: v.Value} }

// CurrencyCodeSchema validates against the ISO 4217 registry.
func CurrencyCodeSchema(c *code.Set) *schema.LeafRule {
	return &schema.LeafRule{
		Label:    "Currency Code",
		Kind:     schema.KindString,
		Required: true,
		MaxLen:   3,
		Enum:     c.Currency,
	}
}

// AccountID is the certified-exporter authorisation number on the supplier.
type AccountID struct {
	ID               string
	SchemeAgencyName string
}

// NewAccountID defaults the agency name to CertEx.
func NewAccountID(id, agency string) AccountID {
	if agency == "" {
		agency = "CertEx"
	}
	return AccountID{ID: id, SchemeAgencyName: agency}
}

func (v AccountID) ToWire() wire.Leaf {
	return wire.Leaf{
		Value: v.ID,
		Attrs: []wire.Attr{{Name: "schemeAgencyName", Value: v.SchemeAgencyName}},
	}
}

// AccountIDSchema allows an empty authorisation number.
func AccountIDSchema() *schema.LeafRule {
	return &schema.LeafRule{
		Label:      "Authorisation Number for Certified Exporter",
		Kind:       schema.KindString,
		AllowEmpty: true,
		MaxLen:     300,
		Attrs: []schema.AttrRule{{
			Name:     "schemeAgencyName",
			Label:    "Scheme Agency Name",
			Required: true,
			Default:  "CertEx",
		}},
	}
}

// TaxScheme identifies the taxation scheme. The authority expects the fixed
// triple OTH / UN/ECE 5153 / 6 on every category.
type TaxScheme struct {
	ID             string
	SchemeID       string
	SchemeAgencyID string
}

// NewTaxScheme fills absent parts with the fixed constants.
func NewTaxScheme(id, schemeID, agencyID string) TaxScheme {
	if id == "" {
		id = "OTH"
	}
	if schemeID == "" {
		schemeID = "UN/ECE 5153"
	}
	if agencyID == "" {
		agencyID = "6"
	}
	return TaxScheme{ID: id, SchemeID: schemeID, SchemeAgencyID: agencyID}
}

// DefaultTaxScheme returns the constant triple.
func DefaultTaxScheme() TaxScheme { return NewTaxScheme("", "", "") }

func (v TaxScheme) ToWire() *wire.Branch {
	return wire.NewBranch().Append("ID", wire.Leaf{
		Value: v.ID,
		Attrs: []wire.Attr{
			{Name: "schemeID", Value: v.SchemeID},
			{Name: "schemeAgencyID", Value: v.SchemeAgencyID},
		},
	})
}

// TaxSchemeSchema defaults every part of the triple.
func TaxSchemeSchema() []schema.Rule {
	return []schema.Rule{{
		Name:     "ID",
		Required: true,
		Leaf: &schema.LeafRule{
			Label:   "Tax Scheme ID",
			Kind:    schema.KindString,
			Default: func() any { return "OTH" },
			Attrs: []schema.AttrRule{
				{Name: "schemeID", Label: "Tax Scheme", Default: "UN/ECE 5153"},
				{Name: "schemeAgencyID", Label: "Tax Scheme Agency", Default: "6"},
			},
		},
	}}
}
