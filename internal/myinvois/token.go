package myinvois

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// expiryMargin is subtracted from the token lifetime so a token is never
// presented within a minute of its server-side expiry.
const expiryMargin = 60 * time.Second

// TokenSource acquires and caches a client-credentials bearer token.
// Concurrent callers share one in-flight token request; the cache is updated
// all-or-nothing, so a failed refresh leaves the previous state untouched.
type TokenSource struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger
	now          func() time.Time

	group singleflight.Group

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenSource creates a token source against the given API base URL.
func NewTokenSource(baseURL, clientID, clientSecret string, httpClient *http.Client, logger *slog.Logger) *TokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenSource{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		logger:       logger,
		now:          time.Now,
	}
}

// Token returns a valid "Bearer <token>" style credential, refreshing it when
// absent or within the expiry margin.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	if ts.token != "" && ts.now().Before(ts.expiry) {
		tok := ts.token
		ts.mu.Unlock()
		return tok, nil
	}
	ts.mu.Unlock()

	v, err, _ := ts.group.Do("token", func() (any, error) {
		return ts.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops the cached token, forcing the next Token call to refresh.
func (ts *TokenSource) Invalidate() {
	ts.mu.Lock()
	ts.token = ""
	ts.expiry = time.Time{}
	ts.mu.Unlock()
}

func (ts *TokenSource) refresh(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {ts.clientID},
		"client_secret": {ts.clientSecret},
		"grant_type":    {"client_credentials"},
		"scope":         {"InvoicingAPI"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ts.baseURL+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", NewAuthError(0, "build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", NewAuthError(0, "token request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewAuthError(resp.StatusCode, "read token response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", NewAuthError(resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", NewAuthError(resp.StatusCode, "decode token response", err)
	}
	if tr.AccessToken == "" {
		return "", NewAuthError(resp.StatusCode, "token response carries no access_token", nil)
	}

	tok := tr.TokenType + " " + tr.AccessToken
	expiry := ts.now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryMargin)

	ts.mu.Lock()
	ts.token = tok
	ts.expiry = expiry
	ts.mu.Unlock()

	ts.logger.Debug("token refreshed",
		slog.Int("expires_in", tr.ExpiresIn),
		slog.Time("cached_until", expiry))
	return tok, nil
}
