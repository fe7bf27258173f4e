package einvoice_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/myinvois-gateway/internal/canonical"
	"github.com/rezonia/myinvois-gateway/pkg/einvoice"
)

const samplePayload = `{
  "id": "INV-2024-001",
  "invType": {"code": "01", "version": "1.1"},
  "currencyCode": "MYR",
  "period": {"startDate": "2024-06-01", "endDate": "2024-06-30", "desc": "Monthly"},
  "billRefer": "BILL-123",
  "additionalInfo": [{"id": "CIF-123"}],
  "supplier": {
    "acctId": "CPT-CCN-W-211111",
    "partyIdentification": [
      {"id": "C2584563222", "scheme": "TIN"},
      {"id": "202001234567", "scheme": "BRN"},
      {"id": "A01-2345-67891012", "scheme": "SST"},
      {"id": "123-4567-89012345", "scheme": "TTX"}
    ],
    "msicCode": {"code": "46510", "name": "Wholesale of computer hardware, software and peripherals"},
    "city": "Kuala Lumpur",
    "postalZone": "50480",
    "countrySubentityCode": "14",
    "addressLines": ["Lot 66", "Bangunan Merdeka", "Persiaran Jaya"],
    "countryCode": "MYS",
    "name": "AMS Setia Jaya Sdn. Bhd.",
    "telephone": "+60123456789",
    "email": "general.ams@supplier.com"
  },
  "buyer": {
    "partyIdentification": [
      {"id": "C2584563200", "scheme": "TIN"},
      {"id": "202001234568", "scheme": "BRN"},
      {"id": "NA", "scheme": "SST"}
    ],
    "city": "Kuala Lumpur",
    "postalZone": "50480",
    "countrySubentityCode": "14",
    "addressLines": ["Lot 77", "Bangunan Merdeka", "Persiaran Jaya"],
    "countryCode": "MYS",
    "name": "Hebat Group",
    "telephone": "+60123456780",
    "email": "name@buyer.com"
  },
  "delivery": {
    "partyIdentification": [{"id": "202001234569", "scheme": "BRN"}],
    "city": "Kuala Lumpur",
    "postalZone": "50480",
    "countrySubentityCode": "14",
    "addressLines": ["Lot 88", "Bangunan Merdeka", "Persiaran Jaya"],
    "countryCode": "MYS",
    "name": "Greenz Sdn. Bhd.",
    "id": "1234567890",
    "chargeIndicator": false,
    "reason": "Service charge",
    "amount": "0.00"
  },
  "payment": {
    "code": "01",
    "account": "1234567890123",
    "note": "Payment method is cash",
    "desc": "Prepayment received",
    "amount": "1.00"
  },
  "allowanceCharge": [
    {"chargeIndicator": false, "reason": "Sample Description", "amount": "100.00"}
  ],
  "taxTotal": {
    "taxAmount": "6.00",
    "taxSubtotal": [
      {"taxableAmt": "100.00", "taxAmount2": "6.00", "taxCategory": "01"}
    ]
  },
  "legal": {
    "lea": "100.00",
    "tea": "100.00",
    "tia": "106.00",
    "ata": "100.00",
    "cta": "0.00",
    "pra": "0.00",
    "pa": "106.00"
  },
  "invoiceLine": [{
    "id": "1234",
    "quantity": 1,
    "unitCode": "XUN",
    "classCode": "022",
    "desc": "Laptop Peripheral",
    "itemPriceExtension": "100.00",
    "lineExtensionAmount": "100.00",
    "price": "100.00",
    "allowanceCharge": [],
    "taxTotal": {
      "taxAmount": "6.00",
      "taxSubtotal": [
        {"taxableAmt": "100.00", "taxAmount2": "6.00", "percent": "6", "taxCategory": "01"}
      ]
    }
  }]
}`

func sampleInput(t *testing.T) einvoice.Input {
	t.Helper()
	var in einvoice.Input
	require.NoError(t, json.Unmarshal([]byte(samplePayload), &in))
	return in
}

func TestPrepare_ValidPayload(t *testing.T) {
	proc := einvoice.NewProcessor()

	doc, err := proc.Prepare(sampleInput(t))
	require.NoError(t, err)

	assert.Equal(t, "INV-2024-001", doc.CodeNumber)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), doc.Hash)
	assert.NotEmpty(t, doc.Encoded)

	// The canonical document is root-wrapped and valid JSON.
	var wrapped map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc.Canonical, &wrapped))
	require.Contains(t, wrapped, "Invoice")
}

func TestPrepare_Deterministic(t *testing.T) {
	proc := einvoice.NewProcessor()

	first, err := proc.Prepare(sampleInput(t))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := proc.Prepare(sampleInput(t))
		require.NoError(t, err)
		assert.Equal(t, first.Hash, again.Hash)
		assert.Equal(t, string(first.Canonical), string(again.Canonical))
	}
}

func TestPrepare_EncodedRoundTrip(t *testing.T) {
	proc := einvoice.NewProcessor()

	doc, err := proc.Prepare(sampleInput(t))
	require.NoError(t, err)

	raw, err := canonical.Decode(doc.Encoded)
	require.NoError(t, err)
	assert.Equal(t, string(doc.Canonical), string(raw))
	assert.Equal(t, doc.Hash, canonical.HashBytes(raw))
}

func TestPrepare_ValidationFailure(t *testing.T) {
	proc := einvoice.NewProcessor()

	in := sampleInput(t)
	in.InvoiceLine[0].UnitCode = "ZZZ"

	_, err := proc.Prepare(in)
	require.Error(t, err)

	verr, ok := err.(*einvoice.ValidationError)
	require.True(t, ok)
	require.Len(t, verr.Violations, 1)
	assert.Contains(t, verr.Violations[0].Path, "InvoicedQuantity.unitCode")
}

func TestPrepare_InputStageFailure(t *testing.T) {
	proc := einvoice.NewProcessor()

	in := sampleInput(t)
	in.Supplier.Identifications = in.Supplier.Identifications[:2]

	_, err := proc.Prepare(in)
	require.Error(t, err)

	verr, ok := err.(*einvoice.ValidationError)
	require.True(t, ok)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "supplier.partyIdentification", verr.Violations[0].Path)
}

func TestValidate(t *testing.T) {
	proc := einvoice.NewProcessor()

	assert.Empty(t, proc.Validate(sampleInput(t)))

	in := sampleInput(t)
	in.CurrencyCode = "XXX"
	violations := proc.Validate(in)
	assert.NotEmpty(t, violations)
}

func TestSubmit_NoClient(t *testing.T) {
	proc := einvoice.NewProcessor()
	_, err := proc.Submit(context.Background(), sampleInput(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API client")
}
