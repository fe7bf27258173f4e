package document

import (
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// LegalMonetaryTotal carries the seven document-level totals. Totals are
// caller-authoritative: no reconciliation against line sums is performed.
type LegalMonetaryTotal struct {
	LineExtensionAmount   Amount
	TaxExclusiveAmount    Amount
	TaxInclusiveAmount    Amount
	AllowanceTotalAmount  Amount
	ChargeTotalAmount     Amount
	PayableRoundingAmount Amount
	PayableAmount         Amount
}

func (t LegalMonetaryTotal) ToWire() *wire.Branch {
	return wire.NewBranch().
		Append("LineExtensionAmount", t.LineExtensionAmount.ToWire()).
		Append("TaxExclusiveAmount", t.TaxExclusiveAmount.ToWire()).
		Append("TaxInclusiveAmount", t.TaxInclusiveAmount.ToWire()).
		Append("AllowanceTotalAmount", t.AllowanceTotalAmount.ToWire()).
		Append("ChargeTotalAmount", t.ChargeTotalAmount.ToWire()).
		Append("PayableRoundingAmount", t.PayableRoundingAmount.ToWire()).
		Append("PayableAmount", t.PayableAmount.ToWire())
}

// LegalMonetaryTotalSchema requires all seven amounts.
func LegalMonetaryTotalSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		amountRule(c, "LineExtensionAmount", "Line Extension Amount"),
		amountRule(c, "TaxExclusiveAmount", "Tax Exclusive Amount"),
		amountRule(c, "TaxInclusiveAmount", "Tax Inclusive Amount"),
		amountRule(c, "AllowanceTotalAmount", "Allowance Total Amount"),
		amountRule(c, "ChargeTotalAmount", "Charge Total Amount"),
		amountRule(c, "PayableRoundingAmount", "Payable Rounding Amount"),
		amountRule(c, "PayableAmount", "Payable Amount"),
	}
}
