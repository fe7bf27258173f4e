package document

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// AllowanceCharge is a discount (charge indicator false) or extra charge
// (true) applied at document, line or freight level.
type AllowanceCharge struct {
	ChargeIndicator  bool
	Reason           string
	Amount           Amount
	MultiplierFactor *decimal.Decimal
}

func (ac AllowanceCharge) ToWire() *wire.Branch {
	b := wire.NewBranch().
		Append("ChargeIndicator", wire.Leaf{Value: ac.ChargeIndicator}).
		Append("AllowanceChargeReason", wire.Leaf{Value: ac.Reason})
	if ac.MultiplierFactor != nil {
		b.Append("MultiplierFactorNumeric", wire.Leaf{Value: *ac.MultiplierFactor})
	}
	b.Append("Amount", ac.Amount.ToWire())
	return b
}

// AllowanceChargeSchema is the rule set for one allowance/charge entry.
func AllowanceChargeSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{
			Name: "ChargeIndicator",
			Leaf: &schema.LeafRule{Label: "Charge Indicator", Kind: schema.KindBool},
		},
		{
			Name: "AllowanceChargeReason",
			Leaf: &schema.LeafRule{
				Label:      "Reason",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     300,
			},
		},
		{
			Name: "MultiplierFactorNumeric",
			Leaf: &schema.LeafRule{Label: "Multiplier Factor Numeric", Kind: schema.KindNumber},
		},
		amountRule(c, "Amount", "Amount"),
	}
}
