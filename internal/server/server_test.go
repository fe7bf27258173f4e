package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/myinvois-gateway/internal/server"
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
    "addressLines": ["Lot 66", "Bangunan Merdeka"],
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
    "addressLines": ["Lot 77", "Bangunan Merdeka"],
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
    "addressLines": ["Lot 88", "Bangunan Merdeka"],
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

func newTestServer() *server.Server {
	return server.NewServer(&server.Config{Address: ":0"})
}

func doRequest(t *testing.T, srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, newTestServer(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	w := doRequest(t, newTestServer(), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuild_Valid(t *testing.T) {
	w := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/documents/build", samplePayload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.BuildResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INV-2024-001", resp.CodeNumber)
	assert.Len(t, resp.Hash, 64)
	assert.NotEmpty(t, resp.Encoded)
	assert.NotEmpty(t, resp.Document)
}

func TestBuild_InvalidJSON(t *testing.T) {
	w := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/documents/build", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuild_ValidationFailure(t *testing.T) {
	payload := strings.Replace(samplePayload, `"unitCode": "XUN"`, `"unitCode": "ZZZ"`, 1)
	w := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/documents/build", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	require.Len(t, resp.Violations, 1)
	assert.Contains(t, resp.Violations[0].Path, "InvoicedQuantity.unitCode")
}

func TestValidate_Valid(t *testing.T) {
	w := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/documents/validate", samplePayload)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Violations)
}

func TestValidate_Invalid(t *testing.T) {
	payload := strings.Replace(samplePayload, `"currencyCode": "MYR"`, `"currencyCode": "XXX"`, 1)
	w := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/documents/validate", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Violations)
}

func TestSubmit_NoCredentials(t *testing.T) {
	w := doRequest(t, newTestServer(), http.MethodPost, "/api/v1/documents/submit", samplePayload)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDocumentTypes_NoCredentials(t *testing.T) {
	w := doRequest(t, newTestServer(), http.MethodGet, "/api/v1/documenttypes", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestValidateTIN_MissingParams(t *testing.T) {
	srv := server.NewServer(&server.Config{
		Address:  ":0",
		ClientID: "id", ClientSecret: "secret",
	})
	w := doRequest(t, srv, http.MethodGet, "/api/v1/taxpayer/validate/C123", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
