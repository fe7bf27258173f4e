package document

import (
	"github.com/rezonia/myinvois-gateway/internal/code"
	"github.com/rezonia/myinvois-gateway/internal/schema"
	"github.com/rezonia/myinvois-gateway/internal/wire"
)

// Shipment carries the shipment reference and its freight allowance/charge.
type Shipment struct {
	ID                     string
	FreightAllowanceCharge AllowanceCharge
}

func (s Shipment) ToWire() *wire.Branch {
	return wire.NewBranch().
		Append("ID", wire.Leaf{Value: s.ID}).
		Append("FreightAllowanceCharge", s.FreightAllowanceCharge.ToWire())
}

// ShipmentSchema is the rule set for the shipment section.
func ShipmentSchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{
			Name: "ID",
			Leaf: &schema.LeafRule{
				Label:      "Shipment ID",
				Kind:       schema.KindString,
				AllowEmpty: true,
				MaxLen:     300,
			},
		},
		{Name: "FreightAllowanceCharge", Required: true, Branch: AllowanceChargeSchema(c)},
	}
}

// Delivery pairs the delivery recipient with the shipment details.
type Delivery struct {
	Party    Party
	Shipment Shipment
}

func (d Delivery) ToWire() *wire.Branch {
	return wire.NewBranch().
		Append("DeliveryParty", d.Party.ToWire()).
		Append("Shipment", d.Shipment.ToWire())
}

// DeliverySchema is the rule set for the delivery section.
func DeliverySchema(c *code.Set) []schema.Rule {
	return []schema.Rule{
		{Name: "DeliveryParty", Required: true, Branch: PartySchema(c)},
		{Name: "Shipment", Required: true, Branch: ShipmentSchema(c)},
	}
}
