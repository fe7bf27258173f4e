package document

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// Amount is a monetary value in the document currency. Amounts never carry a
// currency of their own: the assembler propagates the document-level currency
// code into every nested amount.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// NewAmount builds an amount in the given currency.
func NewAmount(value decimal.Decimal, currency string) Amount {
	return Amount{Value: value, Currency: currency}
}

// ToWire renders {"_": value, "currencyID": currency}.
func (a Amount) ToWire() wire.Leaf {
	return wire.Leaf{
		Value: a.Value,
		Attrs: []wire.Attr{{Name: "currencyID", Value: a.Currency}},
	}
}

// AmountSchema is the rule for a single wire amount leaf.
func AmountSchema(c *code.Set, label string) *schema.LeafRule {
	return &schema.LeafRule{
		Label:    label,
		Kind:     schema.KindNumber,
		Required: true,
		Attrs: []schema.AttrRule{{
			Name:     "currencyID",
			Label:    "Currency ID",
			Required: true,
			MaxLen:   3,
			Enum:     c.Currency,
		}},
	}
}

func amountRule(c *code.Set, name, label string) schema.Rule {
	return schema.Rule{Name: name, Required: true, Leaf: AmountSchema(c, label)}
}
