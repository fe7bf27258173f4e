package myinvois_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/myinvois-gateway/internal/myinvois"
)

func tokenHandler(t *testing.T, tokenCalls *int32) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostFormValue("grant_type"))
		assert.Equal(t, "InvoicingAPI", r.PostFormValue("scope"))
		assert.Equal(t, "id-1", r.PostFormValue("client_id"))
		assert.Equal(t, "secret-1", r.PostFormValue("client_secret"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "abc123",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"scope":        "InvoicingAPI",
		})
	}
}

func newTestServer(t *testing.T, tokenCalls *int32, apiHandler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", tokenHandler(t, tokenCalls))
	if apiHandler != nil {
		mux.HandleFunc("/api/v1.0/", apiHandler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestTokenSource_CachesToken(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, nil)

	ts := myinvois.NewTokenSource(srv.URL, "id-1", "secret-1", srv.Client(), nil)

	tok, err := ts.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", tok)

	for i := 0; i < 5; i++ {
		again, err := ts.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tok, again)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestTokenSource_SingleFlight(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, nil)

	ts := myinvois.NewTokenSource(srv.URL, "id-1", "secret-1", srv.Client(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := ts.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "Bearer abc123", tok)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestTokenSource_InvalidateForcesRefresh(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, nil)

	ts := myinvois.NewTokenSource(srv.URL, "id-1", "secret-1", srv.Client(), nil)

	_, err := ts.Token(context.Background())
	require.NoError(t, err)

	ts.Invalidate()
	_, err = ts.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&tokenCalls))
}

func TestTokenSource_AuthFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ts := myinvois.NewTokenSource(srv.URL, "id-1", "bad-secret", srv.Client(), nil)

	_, err := ts.Token(context.Background())
	require.Error(t, err)

	authErr, ok := err.(*myinvois.AuthError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
}

func newClient(srv *httptest.Server) *myinvois.Client {
	return myinvois.NewClient("id-1", "secret-1",
		myinvois.WithBaseURL(srv.URL),
		myinvois.WithHTTPClient(srv.Client()))
}

func TestSubmit_Accepted(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/documentsubmissions/", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))

		var req struct {
			Documents []myinvois.SubmissionDocument `json:"documents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Documents, 1)
		assert.Equal(t, "JSON", req.Documents[0].Format)
		assert.Equal(t, "INV-001", req.Documents[0].CodeNumber)

		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(myinvois.SubmissionResult{
			SubmissionUID: "HJSD135P2S7D8IU",
			AcceptedDocuments: []myinvois.AcceptedDocument{
				{UUID: "F9D425P6DS7D8IU", InvoiceCodeNumber: "INV-001"},
			},
		})
	})

	client := newClient(srv)
	result, err := client.Submit(context.Background(), []myinvois.SubmissionDocument{{
		Format:       "JSON",
		DocumentHash: "deadbeef",
		CodeNumber:   "INV-001",
		Document:     "eyJ9",
	}})
	require.NoError(t, err)
	assert.Equal(t, "HJSD135P2S7D8IU", result.SubmissionUID)
	require.Len(t, result.AcceptedDocuments, 1)
	assert.Equal(t, "F9D425P6DS7D8IU", result.AcceptedDocuments[0].UUID)
}

func TestSubmit_Rejected(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(myinvois.SubmissionResult{
			SubmissionUID: "HJSD135P2S7D8IU",
			RejectedDocuments: []myinvois.RejectedDocument{
				{InvoiceCodeNumber: "INV-002", Error: json.RawMessage(`{"code":"DS302"}`)},
			},
		})
	})

	client := newClient(srv)
	result, err := client.Submit(context.Background(), []myinvois.SubmissionDocument{{
		Format: "JSON", CodeNumber: "INV-002",
	}})
	require.Error(t, err)
	require.NotNil(t, result)

	rerr, ok := err.(*myinvois.RejectionError)
	require.True(t, ok)
	assert.Equal(t, "HJSD135P2S7D8IU", rerr.SubmissionUID)
	require.Len(t, rerr.Rejected, 1)
	assert.Equal(t, "INV-002", rerr.Rejected[0].InvoiceCodeNumber)
}

func TestSubmit_Empty(t *testing.T) {
	client := myinvois.NewClient("id-1", "secret-1")
	_, err := client.Submit(context.Background(), nil)
	require.Error(t, err)
}

func TestDocumentTypes(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/documenttypes", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"result": []myinvois.DocumentType{
				{ID: 45, InvoiceTypeCode: 4, Description: "Self-billed invoice"},
			},
		})
	})

	client := newClient(srv)
	types, err := client.DocumentTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, 45, types[0].ID)
}

func TestValidateTIN(t *testing.T) {
	var status int32 = http.StatusOK
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/taxpayer/validate/C2584563222", r.URL.Path)
		assert.Equal(t, "BRN", r.URL.Query().Get("idType"))
		w.WriteHeader(int(atomic.LoadInt32(&status)))
	})

	client := newClient(srv)

	valid, err := client.ValidateTIN(context.Background(), "C2584563222", "BRN", "202001234567")
	require.NoError(t, err)
	assert.True(t, valid)

	atomic.StoreInt32(&status, http.StatusNotFound)
	valid, err = client.ValidateTIN(context.Background(), "C2584563222", "BRN", "202001234567")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSearchTIN(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/taxpayer/search/tin", r.URL.Path)
		assert.Equal(t, "BRN", r.URL.Query().Get("idType"))
		json.NewEncoder(w).Encode(map[string]string{"tin": "C2584563222"})
	})

	client := newClient(srv)
	tin, err := client.SearchTIN(context.Background(), "BRN", "202001234567", "")
	require.NoError(t, err)
	assert.Equal(t, "C2584563222", tin)
}

func TestNotifications(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/notifications/taxpayer", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pageNo"))
		json.NewEncoder(w).Encode(map[string]any{
			"result": []myinvois.Notification{
				{NotificationID: "N-1", Subject: "Document rejected"},
			},
		})
	})

	client := newClient(srv)
	notifs, err := client.Notifications(context.Background(), myinvois.NotificationQuery{PageNo: 1})
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, "N-1", notifs[0].NotificationID)
}

func TestTransportError(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	})

	client := newClient(srv)
	_, err := client.DocumentTypes(context.Background())
	require.Error(t, err)

	terr, ok := err.(*myinvois.TransportError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
}
