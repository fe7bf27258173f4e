package document

import (
	"time"

	"github.com/rezonia/myinvois-gateway/internal/decimal"
)

// Build assembles the flat input payload into the invoice node tree. The
// document currency is propagated into every nested amount, monetary values
// are rounded to sen, and an absent billing period is defaulted to the bounds
// of the current month. Build does not validate; the assembled tree is handed
// to the schema validator as-is.
func Build(in Input) Invoice {
	cur := in.CurrencyCode

	var supplierAcct *AccountID
	if in.Supplier.AcctID != "" || in.Supplier.Scheme != "" {
		acct := NewAccountID(in.Supplier.AcctID, in.Supplier.Scheme)
		supplierAcct = &acct
	}

	refs := make([]AdditionalDocumentReference, len(in.AdditionalInfo))
	for i, r := range in.AdditionalInfo {
		refs[i] = AdditionalDocumentReference{ID: r.ID}
	}

	lines := make([]InvoiceLine, len(in.InvoiceLine))
	for i, l := range in.InvoiceLine {
		lines[i] = buildLine(l, cur)
	}

	start, end := monthBounds(time.Now().UTC())
	period := InvoicePeriod{
		StartDate:   in.Period.StartDate,
		EndDate:     in.Period.EndDate,
		Description: in.Period.Description,
	}
	if period.StartDate == "" {
		period.StartDate = start
	}
	if period.EndDate == "" {
		period.EndDate = end
	}

	return Invoice{
		ID:               NewInvoiceID(in.ID),
		IssueDate:        NewIssueDate(in.Date),
		IssueTime:        NewIssueTime(in.Time),
		TypeCode:         NewInvoiceTypeCode(in.InvType.Code, in.InvType.Version),
		CurrencyCode:     NewCurrencyCode(cur),
		Period:           period,
		BillingReference: BillingReference{ID: in.BillRefer},
		DocReferences:    refs,
		Supplier: AccountingParty{
			AccountID: supplierAcct,
			Party:     buildParty(in.Supplier),
		},
		Customer: AccountingParty{Party: buildParty(in.Buyer)},
		Delivery: buildDelivery(in.Delivery, cur),
		PaymentMeans: PaymentMeans{
			Code:                  in.Payment.Code,
			PayeeFinancialAccount: in.Payment.Account,
		},
		PaymentTerms: PaymentTerms{Note: in.Payment.Note},
		PrepaidPayment: PrepaidPayment{
			ID:     in.Payment.Desc,
			Amount: NewAmount(decimal.RoundMYR(in.Payment.Amount), cur),
			Date:   in.Payment.PaidDate,
			Time:   in.Payment.PaidTime,
		},
		AllowanceCharges: buildAllowances(in.AllowanceCharge, cur),
		TaxTotal:         buildTaxTotal(in.TaxTotal, cur),
		MonetaryTotal: LegalMonetaryTotal{
			LineExtensionAmount:   NewAmount(decimal.RoundMYR(in.Legal.LineExtensionAmount), cur),
			TaxExclusiveAmount:    NewAmount(decimal.RoundMYR(in.Legal.TaxExclusiveAmount), cur),
			TaxInclusiveAmount:    NewAmount(decimal.RoundMYR(in.Legal.TaxInclusiveAmount), cur),
			AllowanceTotalAmount:  NewAmount(decimal.RoundMYR(in.Legal.AllowanceTotalAmount), cur),
			ChargeTotalAmount:     NewAmount(decimal.RoundMYR(in.Legal.ChargeTotalAmount), cur),
			PayableRoundingAmount: NewAmount(decimal.RoundMYR(in.Legal.PayableRoundingAmount), cur),
			PayableAmount:         NewAmount(decimal.RoundMYR(in.Legal.PayableAmount), cur),
		},
		Lines: lines,
	}
}

func buildParty(p PartyInput) Party {
	ids := make([]PartyIdentification, len(p.Identifications))
	for i, id := range p.Identifications {
		ids[i] = PartyIdentification{ID: id.ID, Scheme: id.Scheme}
	}
	return Party{
		Industry:        IndustryClassification{Code: p.MSIC.Code, Name: p.MSIC.Name},
		Identifications: ids,
		AddressLines:    p.AddressLines,
		City:            p.City,
		PostalZone:      p.PostalZone,
		StateCode:       p.StateCode,
		CountryCode:     p.CountryCode,
		Name:            p.Name,
		Telephone:       p.Telephone,
		Email:           p.Email,
	}
}

func buildDelivery(d DeliveryInput, cur string) Delivery {
	ids := make([]PartyIdentification, len(d.Identifications))
	for i, id := range d.Identifications {
		ids[i] = PartyIdentification{ID: id.ID, Scheme: id.Scheme}
	}
	return Delivery{
		Party: Party{
			Identifications: ids,
			AddressLines:    d.AddressLines,
			City:            d.City,
			PostalZone:      d.PostalZone,
			StateCode:       d.StateCode,
			CountryCode:     d.CountryCode,
			Name:            d.Name,
		},
		Shipment: Shipment{
			ID: d.ShipmentID,
			FreightAllowanceCharge: AllowanceCharge{
				ChargeIndicator: d.ChargeIndicator,
				Reason:          d.Reason,
				Amount:          NewAmount(decimal.RoundMYR(d.Amount), cur),
			},
		},
	}
}

func buildAllowances(in []AllowanceInput, cur string) []AllowanceCharge {
	out := make([]AllowanceCharge, len(in))
	for i, ac := range in {
		out[i] = AllowanceCharge{
			ChargeIndicator:  ac.ChargeIndicator,
			Reason:           ac.Reason,
			Amount:           NewAmount(decimal.RoundMYR(ac.Amount), cur),
			MultiplierFactor: ac.MultiplierFactor,
		}
	}
	return out
}

func buildTaxTotal(in TaxTotalInput, cur string) TaxTotal {
	subs := make([]TaxSubtotal, len(in.TaxSubtotals))
	for i, s := range in.TaxSubtotals {
		subs[i] = TaxSubtotal{
			TaxableAmount: NewAmount(decimal.RoundMYR(s.TaxableAmount), cur),
			TaxAmount:     NewAmount(decimal.RoundMYR(s.TaxAmount), cur),
			Category: TaxCategory{
				ID:              s.TaxCategory,
				Scheme:          DefaultTaxScheme(),
				ExemptionReason: s.TaxDesc,
			},
			Percent: s.Percent,
		}
	}
	return TaxTotal{TaxAmount: NewAmount(decimal.RoundMYR(in.TaxAmount), cur), Subtotals: subs}
}

func buildLine(l LineInput, cur string) InvoiceLine {
	return InvoiceLine{
		AllowanceCharges: buildAllowances(l.AllowanceCharges, cur),
		ID:               l.ID,
		Quantity:         l.Quantity,
		UnitCode:         l.UnitCode,
		Item: InvoiceItem{
			ClassificationCode: l.ClassificationCode,
			Description:        l.Description,
		},
		ItemPriceExtension:  NewAmount(decimal.RoundMYR(l.ItemPriceExtension), cur),
		LineExtensionAmount: NewAmount(decimal.RoundMYR(l.LineExtensionAmount), cur),
		Price:               NewAmount(decimal.RoundMYR(l.Price), cur),
		TaxTotal:            buildTaxTotal(l.TaxTotal, cur),
	}
}

// monthBounds returns the first and last day of t's month as wire dates.
func monthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}
