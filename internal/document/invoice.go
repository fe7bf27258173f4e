package document

import (
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// Invoice is the fully wired document root.
type Invoice struct {
	ID               InvoiceID
	IssueDate        IssueDate
	IssueTime        IssueTime
	TypeCode         InvoiceTypeCode
	CurrencyCode     CurrencyCode
	Period           InvoicePeriod
	BillingReference BillingReference
	DocReferences    []AdditionalDocumentReference
	Supplier         AccountingParty
	Customer         AccountingParty
	Delivery         Delivery
	PaymentMeans     PaymentMeans
	PaymentTerms     PaymentTerms
	PrepaidPayment   PrepaidPayment
	AllowanceCharges []AllowanceCharge
	TaxTotal         TaxTotal
	MonetaryTotal    LegalMonetaryTotal
	Lines            []InvoiceLine
}

// ToWire renders the invoice sections in the exact structural order the
// authority's schema mandates. It is a pure projection and cannot fail;
// malformed values surface at the validation pass.
func (inv Invoice) ToWire() *wire.Branch {
	b := wire.NewBranch().
		Append("ID", inv.ID.ToWire()).
		Append("IssueDate", inv.IssueDate.ToWire()).
		Append("IssueTime", inv.IssueTime.ToWire()).
		Append("InvoiceTypeCode", inv.TypeCode.ToWire()).
		Append("DocumentCurrencyCode", inv.CurrencyCode.ToWire()).
		Append("InvoicePeriod", inv.Period.ToWire()).
		Append("BillingReference", inv.BillingReference.ToWire())

	refs := make([]wire.Node, len(inv.DocReferences))
	for i, r := range inv.DocReferences {
		refs[i] = r.ToWire()
	}
	b.Append("AdditionalDocumentReference", refs...)

	b.Append("AccountingSupplierParty", inv.Supplier.ToWire()).
		Append("AccountingCustomerParty", inv.Customer.ToWire()).
		Append("Delivery", inv.Delivery.ToWire()).
		Append("PaymentMeans", inv.PaymentMeans.ToWire()).
		Append("PaymentTerms", inv.PaymentTerms.ToWire()).
		Append("PrepaidPayment", inv.PrepaidPayment.ToWire())

	charges := make([]wire.Node, len(inv.AllowanceCharges))
	for i, ac := range inv.AllowanceCharges {
		charges[i] = ac.ToWire()
	}
	b.Append("AllowanceCharge", charges...)

	b.Append("TaxTotal", inv.TaxTotal.ToWire()).
		Append("LegalMonetaryTotal", inv.MonetaryTotal.ToWire())

	lines := make([]wire.Node, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = l.ToWire()
	}
	b.Append("InvoiceLine", lines...)

	return b
}

// InvoiceSchema is the complete rule set for the assembled invoice tree,
// composed from each node's schema descriptor.
func InvoiceSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{Name: "ID", Required: true, Leaf: InvoiceIDSchema()},
		{Name: "IssueDate", Required: true, Leaf: IssueDateSchema()},
		{Name: "IssueTime", Required: true, Leaf: IssueTimeSchema()},
		{Name: "InvoiceTypeCode", Required: true, Leaf: InvoiceTypeCodeSchema(c)},
		{Name: "DocumentCurrencyCode", Required: true, Leaf: CurrencyCodeSchema(c)},
		{Name: "InvoicePeriod", Required: true, Branch: InvoicePeriodSchema()},
		{Name: "BillingReference", Required: true, Branch: BillingReferenceSchema()},
		{Name: "AdditionalDocumentReference", Required: true, Branch: AdditionalDocumentReferenceSchema()},
		{Name: "AccountingSupplierParty", Required: true, Branch: AccountingPartySchema(c)},
		{Name: "AccountingCustomerParty", Required: true, Branch: AccountingPartySchema(c)},
		{Name: "Delivery", Required: true, Branch: DeliverySchema(c)},
		{Name: "PaymentMeans", Required: true, Branch: PaymentMeansSchema(c)},
		{Name: "PaymentTerms", Required: true, Branch: PaymentTermsSchema()},
		{Name: "PrepaidPayment", Required: true, Branch: PrepaidPaymentSchema(c)},
		{Name: "AllowanceCharge", Required: true, Branch: AllowanceChargeSchema(c)},
		{Name: "TaxTotal", Required: true, Branch: TaxTotalSchema(c)},
		{Name: "LegalMonetaryTotal", Required: true, Branch: LegalMonetaryTotalSchema(c)},
		{Name: "InvoiceLine", Required: true, Branch: InvoiceLineSchema(c)},
	}
}
