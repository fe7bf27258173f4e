package document

import (
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// IndustryClassification is the MSIC code and business description.
type IndustryClassification struct {
	Code string
	Name string
}

// PartyIdentification is one identification entry. The permitted length of ID
// depends on Scheme: BRN 20, SST 35, TTX 17, anything else 12. "NA" and ""
// are always accepted.
type PartyIdentification struct {
	ID     string
	Scheme string
}

// Party is a legal entity: supplier, buyer or delivery recipient.
type Party struct {
	Industry        IndustryClassification
	Identifications []PartyIdentification
	AddressLines    []string
	City            string
	PostalZone      string
	StateCode       string
	CountryCode     string
	Name            string
	Telephone       string
	Email           string
}

// ToWire renders the party sections in schema order. The postal address is
// emitted only when address lines are present; the industry classification
// only when a code is set.
func (p Party) ToWire() *wire.Branch {
	b := wire.NewBranch()

	if p.Industry.Code != "" {
		b.Append("IndustryClassificationCode", wire.Leaf{
			Value: p.Industry.Code,
			Attrs: []wire.Attr{{Name: "name", Value: p.Industry.Name}},
		})
	}

	if len(p.Identifications) > 0 {
		ids := make([]wire.Node, len(p.Identifications))
		for i, id := range p.Identifications {
			ids[i] = wire.NewBranch().Append("ID", wire.Leaf{
				Value: id.ID,
				Attrs: []wire.Attr{{Name: "schemeID", Value: id.Scheme}},
			})
		}
		b.Append("PartyIdentification", ids...)
	}

	if len(p.AddressLines) > 0 {
		addr := wire.NewBranch().
			Append("CityName", wire.Leaf{Value: p.City}).
			Append("PostalZone", wire.Leaf{Value: p.PostalZone}).
			Append("CountrySubentityCode", wire.Leaf{Value: p.StateCode})
		lines := make([]wire.Node, len(p.AddressLines))
		for i, line := range p.AddressLines {
			lines[i] = wire.NewBranch().Append("Line", wire.Leaf{Value: line})
		}
		addr.Append("AddressLine", lines...)
		addr.Append("Country", wire.NewBranch().Append("IdentificationCode", wire.Leaf{
			Value: p.CountryCode,
			Attrs: []wire.Attr{
				{Name: "listID", Value: "ISO3166-1"},
				{Name: "listAgencyID", Value: "6"},
			},
		}))
		b.Append("PostalAddress", addr)
	}

	b.Append("PartyLegalEntity",
		wire.NewBranch().Append("RegistrationName", wire.Leaf{Value: p.Name}))

	b.Append("Contact", wire.NewBranch().
		Append("Telephone", wire.Leaf{Value: p.Telephone}).
		Append("ElectronicMail", wire.Leaf{Value: p.Email}))

	return b
}

// PartyIdentificationSchema is the conditional-length rule for one entry.
func PartyIdentificationSchema() []schema.Rule {
	return []schema.Rule{{
		Name:     "ID",
		Required: true,
		Leaf: &schema.LeafRule{
			Label:         "Registration / Identification Number / Passport Number",
			Kind:          schema.KindString,
			AllowEmpty:    true,
			AllowLiterals: []string{"NA"},
			MaxLen:        12,
			CaseAttr:      "schemeID",
			CaseMaxLen:    idLengthByScheme,
			Attrs: []schema.AttrRule{{
				Name:       "schemeID",
				Label:      "Field Type",
				Required:   true,
				AllowEmpty: true,
				Enum:       idSchemes,
			}},
		},
	}}
}

// PartySchema is the full rule set for one party section.
func PartySchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{
			Name: "IndustryClassificationCode",
			Leaf: &schema.LeafRule{
				Label: "Classification Code",
				Kind:  schema.KindString,
				Enum:  c.Industry,
				Attrs: []schema.AttrRule{{
					Name:     "name",
					Label:    "Classification Description",
					DescEnum: c.Industry,
				}},
			},
		},
		{
			Name:     "PartyIdentification",
			Required: true,
			Branch:   PartyIdentificationSchema(),
		},
		{
			Name:     "PostalAddress",
			Required: true,
			Branch: []schema.Rule{
				{
					Name:     "CityName",
					Required: true,
					Leaf: &schema.LeafRule{
						Label:      "City Name",
						Kind:       schema.KindString,
						Required:   true,
						AllowEmpty: true,
						MaxLen:     50,
					},
				},
				{
					Name:     "PostalZone",
					Required: true,
					Leaf: &schema.LeafRule{
						Label:      "Postal Zone",
						Kind:       schema.KindString,
						AllowEmpty: true,
						MaxLen:     50,
					},
				},
				{
					Name:     "CountrySubentityCode",
					Required: true,
					Leaf: &schema.LeafRule{
						Label:      "State Code",
						Kind:       schema.KindString,
						AllowEmpty: true,
						Enum:       c.State,
					},
				},
				{
					Name:     "AddressLine",
					Required: true,
					MinItems: 1,
					Branch: []schema.Rule{{
						Name:     "Line",
						Required: true,
						Leaf: &schema.LeafRule{
							Label:      "Address Line",
							Kind:       schema.KindString,
							AllowEmpty: true,
							MaxLen:     150,
						},
					}},
				},
				{
					Name:     "Country",
					Required: true,
					Branch: []schema.Rule{{
						Name:     "IdentificationCode",
						Required: true,
						Leaf: &schema.LeafRule{
							Label:      "Country",
							Kind:       schema.KindString,
							AllowEmpty: true,
							Enum:       c.Country,
							Attrs: []schema.AttrRule{
								{Name: "listID", Label: "Country List", Required: true, Const: "ISO3166-1"},
								{Name: "listAgencyID", Label: "Country List Agency", Required: true, Const: "6"},
							},
						},
					}},
				},
			},
		},
		{
			Name:     "PartyLegalEntity",
			Required: true,
			Branch: []schema.Rule{{
				Name:     "RegistrationName",
				Required: true,
				Leaf: &schema.LeafRule{
					Label:      "Registration Name",
					Kind:       schema.KindString,
					Required:   true,
					AllowEmpty: true,
					MaxLen:     300,
				},
			}},
		},
		{
			Name: "Contact",
			Branch: []schema.Rule{
				{
					Name: "Telephone",
					Leaf: &schema.LeafRule{
						Label:      "Contact number",
						Kind:       schema.KindString,
						AllowEmpty: true,
						Pattern:    c.Phone(),
						PatternMsg: "Contact number must start with a valid country code and contain 6-12 digits after the code",
					},
				},
				{
					Name: "ElectronicMail",
					Leaf: &schema.LeafRule{
						Label:      "Email",
						Kind:       schema.KindString,
						AllowEmpty: true,
						Pattern:    emailRe,
						PatternMsg: "Please provide a valid email address",
					},
				},
			},
		},
	}
}

// AccountingParty wraps a party with an optional account identifier, used for
// both AccountingSupplierParty and AccountingCustomerParty.
type AccountingParty struct {
	AccountID *AccountID
	Party     Party
}

func (ap AccountingParty) ToWire() *wire.Branch {
	b := wire.NewBranch()
	if ap.AccountID != nil {
		b.Append("AdditionalAccountID", ap.AccountID.ToWire())
	}
	b.Append("Party", ap.Party.ToWire())
	return b
}

// AccountingPartySchema is the rule set for an accounting party section.
func AccountingPartySchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{Name: "AdditionalAccountID", Leaf: AccountIDSchema()},
		{Name: "Party", Required: true, Branch: PartySchema(c)},
	}
}
