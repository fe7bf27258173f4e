package document

import (
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// PaymentMeans is the payment mode and payee account.
type PaymentMeans struct {
	Code                  string
	PayeeFinancialAccount string
}

func (pm PaymentMeans) ToWire() *wire.Branch {
	return wire.NewBranch().
		Append("PaymentMeansCode", wire.Leaf{Value: pm.Code}).
		Append("PayeeFinancialAccount",
			wire.NewBranch().Append("ID", wire.Leaf{Value: pm.PayeeFinancialAccount}))
}

// PaymentMeansSchema validates the mode against the payment registry.
func PaymentMeansSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{
			Name: "PaymentMeansCode",
			Leaf: &schema.LeafRule{
				Label:      "Payment Means Code",
				Kind:       schema.KindString,
				AllowEmpty: true,
				Enum:       c.PaymentMode,
			},
		},
		{
			Name: "PayeeFinancialAccount",
			Branch: []schema.Rule{{
				Name: "ID",
				Leaf: &schema.LeafRule{
					Label:      "Payee Financial Account",
					Kind:       schema.KindString,
					AllowEmpty: true,
					MaxLen:     150,
				},
			}},
		},
	}
}

// PaymentTerms is the free-text payment terms note.
type PaymentTerms struct {
	Note string
}

func (pt PaymentTerms) ToWire() *wire.Branch {
	return wire.NewBranch().Append("Note", wire.Leaf{Value: pt.Note})
}

// PaymentTermsSchema caps the note at 300 characters.
func PaymentTermsSchema() []schema.Rule {
	return []schema.Rule{{
		Name: "Note",
		Leaf: &schema.LeafRule{
			Label:      "Payment Terms",
			Kind:       schema.KindString,
			AllowEmpty: true,
			MaxLen:     300,
		},
	}}
}

// PrepaidPayment records a prepayment against the invoice.
type PrepaidPayment struct {
	ID     string
	Amount Amount
	Date   string
	Time   string
}

func (pp PrepaidPayment) ToWire() *wire.Branch {
	return wire.NewBranch().
		Append("ID", wire.Leaf{Value: pp.ID}).
		Append("PaidAmount", pp.Amount.ToWire()).
		Append("PaidDate", wire.Leaf{Value: pp.Date}).
		Append("PaidTime", wire.Leaf{Value: pp.Time})
}

// PrepaidPaymentSchema defaults absent paid date/time to now.
func PrepaidPaymentSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{
			Name: "ID",
			Leaf: &schema.LeafRule{
				Label:      "Prepayment Reference Number",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     150,
			},
		},
		{Name: "PaidAmount", Leaf: AmountSchema(c, "Paid Amount")},
		{
			Name:     "PaidDate",
			Required: true,
			Leaf: &schema.LeafRule{
				Label:      "Paid Date",
				Kind:       schema.KindString,
				AllowEmpty: true,
				Pattern:    dateRe,
				PatternMsg: "Paid Date must be in the format YYYY-MM-DD",
				Default:    nowDate,
			},
		},
		{
			Name: "PaidTime",
			Leaf: &schema.LeafRule{
				Label:      "Paid Time",
				Kind:       schema.KindString,
				AllowEmpty: true,
				Pattern:    timeRe,
				PatternMsg: "Paid Time must be in the format hh:mm:ssZ",
				Default:    nowTime,
			},
		},
	}
}
