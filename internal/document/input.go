package document

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rezonia/myinvois-gateway/internal/schema"
)

// Input is the flat submission payload. Field names mirror the public API;
// nothing here is pre-wired, the assembler maps groups of scalars onto nodes.
type Input struct {
	ID              string              `json:"id"`
	Date            string              `json:"date"`
	Time            string              `json:"time"`
	InvType         InvTypeInput        `json:"invType"`
	CurrencyCode    string              `json:"currencyCode"`
	Period          PeriodInput         `json:"period"`
	BillRefer       string              `json:"billRefer"`
	AdditionalInfo  []DocReferenceInput `json:"additionalInfo"`
	Supplier        PartyInput          `json:"supplier"`
	Buyer           PartyInput          `json:"buyer"`
	Delivery        DeliveryInput       `json:"delivery"`
	Payment         PaymentInput        `json:"payment"`
	AllowanceCharge []AllowanceInput    `json:"allowanceCharge"`
	TaxTotal        TaxTotalInput       `json:"taxTotal"`
	Legal           LegalInput          `json:"legal"`
	InvoiceLine     []LineInput         `json:"invoiceLine"`
}

type InvTypeInput struct {
	Code    string `json:"code"`
	Version string `json:"version"`
}

type PeriodInput struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"desc"`
}

type DocReferenceInput struct {
	ID string `json:"id"`
}

type IdentificationInput struct {
	ID     string `json:"id"`
	Scheme string `json:"scheme"`
}

type MSICInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type PartyInput struct {
	AcctID          string                `json:"acctId,omitempty"`
	Scheme          string                `json:"scheme,omitempty"`
	Identifications []IdentificationInput `json:"partyIdentification"`
	MSIC            MSICInput             `json:"msicCode,omitempty"`
	City            string                `json:"city"`
	PostalZone      string                `json:"postalZone"`
	StateCode       string                `json:"countrySubentityCode"`
	AddressLines    []string              `json:"addressLines"`
	CountryCode     string                `json:"countryCode"`
	Name            string                `json:"name"`
	Telephone       string                `json:"telephone"`
	Email           string                `json:"email"`
}

type DeliveryInput struct {
	Identifications []IdentificationInput `json:"partyIdentification"`
	City            string                `json:"city"`
	PostalZone      string                `json:"postalZone"`
	StateCode       string                `json:"countrySubentityCode"`
	AddressLines    []string              `json:"addressLines"`
	CountryCode     string                `json:"countryCode"`
	Name            string                `json:"name"`
	ShipmentID      string                `json:"id"`
	ChargeIndicator bool                  `json:"chargeIndicator"`
	Reason          string                `json:"reason"`
	Amount          decimal.Decimal       `json:"amount"`
}

type PaymentInput struct {
	Code     string          `json:"code"`
	Account  string          `json:"account"`
	Note     string          `json:"note"`
	Desc     string          `json:"desc"`
	Amount   decimal.Decimal `json:"amount"`
	PaidDate string          `json:"paidDate"`
	PaidTime string          `json:"paidTime"`
}

type AllowanceInput struct {
	ChargeIndicator  bool             `json:"chargeIndicator"`
	Reason           string           `json:"reason"`
	Amount           decimal.Decimal  `json:"amount"`
	MultiplierFactor *decimal.Decimal `json:"mfn,omitempty"`
}

type TaxSubtotalInput struct {
	TaxableAmount decimal.Decimal  `json:"taxableAmt"`
	TaxAmount     decimal.Decimal  `json:"taxAmount2"`
	Percent       *decimal.Decimal `json:"percent,omitempty"`
	TaxCategory   string           `json:"taxCategory"`
	TaxDesc       string           `json:"taxDesc,omitempty"`
}

type TaxTotalInput struct {
	TaxAmount    decimal.Decimal    `json:"taxAmount"`
	TaxSubtotals []TaxSubtotalInput `json:"taxSubtotal"`
}

type LegalInput struct {
	LineExtensionAmount   decimal.Decimal `json:"lea"`
	TaxExclusiveAmount    decimal.Decimal `json:"tea"`
	TaxInclusiveAmount    decimal.Decimal `json:"tia"`
	AllowanceTotalAmount  decimal.Decimal `json:"ata"`
	ChargeTotalAmount     decimal.Decimal `json:"cta"`
	PayableRoundingAmount decimal.Decimal `json:"pra"`
	PayableAmount         decimal.Decimal `json:"pa"`
}

type LineInput struct {
	ID                  string           `json:"id"`
	Quantity            int64            `json:"quantity"`
	UnitCode            string           `json:"unitCode"`
	ClassificationCode  string           `json:"classCode"`
	Description         string           `json:"desc"`
	ItemPriceExtension  decimal.Decimal  `json:"itemPriceExtension"`
	LineExtensionAmount decimal.Decimal  `json:"lineExtensionAmount"`
	Price               decimal.Decimal  `json:"price"`
	AllowanceCharges    []AllowanceInput `json:"allowanceCharge"`
	TaxTotal            TaxTotalInput    `json:"taxTotal"`
}

// Check runs the input-stage sanity pass: required scalars and the fixed
// identification entry counts. The authoritative field-by-field validation
// happens on the assembled wire tree.
func (in Input) Check() []schema.FieldError {
	var errs []schema.FieldError
	add := func(path, msg string) {
		errs = append(errs, schema.FieldError{
			Path: path, Kind: schema.ErrStructural, Rule: "input", Message: msg,
		})
	}

	if in.ID == "" {
		add("id", "Invoice ID is required")
	}
	if in.CurrencyCode == "" {
		add("currencyCode", "Currency Code is required")
	}
	if in.InvType.Code == "" {
		add("invType.code", "Invoice Type Code is required")
	}
	if v := in.InvType.Version; v != "" && v != "1.0" && v != "1.1" {
		add("invType.version", "Invalid Version ID. Must be one of: 1.0 or 1.1")
	}
	if n := len(in.Supplier.Identifications); n != 4 {
		add("supplier.partyIdentification",
			fmt.Sprintf("Exactly 4 party identification entries are required, got %d", n))
	}
	if n := len(in.Buyer.Identifications); n != 3 {
		add("buyer.partyIdentification",
			fmt.Sprintf("Exactly 3 party identification entries are required, got %d", n))
	}
	if n := len(in.Delivery.Identifications); n != 1 {
		add("delivery.partyIdentification",
			fmt.Sprintf("Exactly 1 party identification entry is required, got %d", n))
	}
	if len(in.InvoiceLine) == 0 {
		add("invoiceLine", "At least one invoice line is required")
	}
	return errs
}
