// Package myinvois is the HTTP boundary to the MyInvois invoicing API:
// client-credentials authentication, document type lookups, document
// submission and the taxpayer utilities (notifications, TIN validation and
// search).
package myinvois

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// SandboxBaseURL is the pre-production environment.
	SandboxBaseURL = "https://preprod-api.myinvois.hasil.gov.my"
	// ProductionBaseURL is the live environment.
	ProductionBaseURL = "https://api.myinvois.hasil.gov.my"

	DefaultTimeout = 30 * time.Second
)

// Client calls the MyInvois invoicing API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenSource
	logger     *slog.Logger
}

// ClientOption configures the client
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.baseURL = url
	}
}

// WithTimeout sets custom HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(cfg *clientConfig) {
		cfg.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client, overriding WithTimeout
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(cfg *clientConfig) {
		cfg.httpClient = hc
	}
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = l
	}
}

// NewClient creates a client authenticating with the given credentials.
func NewClient(clientID, clientSecret string, opts ...ClientOption) *Client {
	cfg := &clientConfig{
		baseURL: SandboxBaseURL,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	base := strings.TrimRight(cfg.baseURL, "/")
	return &Client{
		baseURL:    base,
		httpClient: hc,
		tokens:     NewTokenSource(base, clientID, clientSecret, hc, cfg.logger),
		logger:     cfg.logger,
	}
}

// Submit posts the documents to documentsubmissions and parses the accepted
// and rejected entries. A response with rejected documents returns both the
// partial result and a *RejectionError.
func (c *Client) Submit(ctx context.Context, docs []SubmissionDocument) (*SubmissionResult, error) {
	if len(docs) == 0 {
		return nil, NewTransportError("submit documents", 0, "", fmt.Errorf("no documents to submit"))
	}

	body, err := json.Marshal(submissionRequest{Documents: docs})
	if err != nil {
		return nil, NewTransportError("submit documents", 0, "", err)
	}

	correlationID := uuid.NewString()
	c.logger.Info("submitting documents",
		slog.String("correlation_id", correlationID),
		slog.Int("count", len(docs)))

	respBody, status, err := c.do(ctx, http.MethodPost, "/api/v1.0/documentsubmissions/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusAccepted {
		return nil, NewTransportError("submit documents", status, strings.TrimSpace(string(respBody)), nil)
	}

	var result SubmissionResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, NewTransportError("submit documents", status, "decode response", err)
	}

	c.logger.Info("submission processed",
		slog.String("correlation_id", correlationID),
		slog.String("submission_uid", result.SubmissionUID),
		slog.Int("accepted", len(result.AcceptedDocuments)),
		slog.Int("rejected", len(result.RejectedDocuments)))

	if len(result.RejectedDocuments) > 0 {
		return &result, NewRejectionError(result.SubmissionUID, result.RejectedDocuments)
	}
	return &result, nil
}

// DocumentTypes lists all document types.
func (c *Client) DocumentTypes(ctx context.Context) ([]DocumentType, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/api/v1.0/documenttypes", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, NewTransportError("list document types", status, strings.TrimSpace(string(body)), nil)
	}

	// The listing arrives wrapped in a result envelope.
	var page struct {
		Result []DocumentType `json:"result"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, NewTransportError("list document types", status, "decode response", err)
	}
	return page.Result, nil
}

// DocumentType fetches a single document type by its numeric ID.
func (c *Client) DocumentType(ctx context.Context, id int) (*DocumentType, error) {
	path := "/api/v1.0/documenttypes/" + strconv.Itoa(id)
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, NewTransportError("get document type", status, strings.TrimSpace(string(body)), nil)
	}

	var dt DocumentType
	if err := json.Unmarshal(body, &dt); err != nil {
		return nil, NewTransportError("get document type", status, "decode response", err)
	}
	return &dt, nil
}

// DocumentTypeVersion fetches one schema version of a document type.
func (c *Client) DocumentTypeVersion(ctx context.Context, id, versionID int) (*DocumentTypeVersion, error) {
	path := fmt.Sprintf("/api/v1.0/documenttypes/%d/versions/%d", id, versionID)
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, NewTransportError("get document type version", status, strings.TrimSpace(string(body)), nil)
	}

	var v DocumentTypeVersion
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, NewTransportError("get document type version", status, "decode response", err)
	}
	return &v, nil
}

// Notifications lists taxpayer notifications matching the query.
func (c *Client) Notifications(ctx context.Context, q NotificationQuery) ([]Notification, error) {
	params := url.Values{}
	if q.DateFrom != "" {
		params.Set("dateFrom", q.DateFrom)
	}
	if q.DateTo != "" {
		params.Set("dateTo", q.DateTo)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Channel != "" {
		params.Set("channel", q.Channel)
	}
	if q.PageNo > 0 {
		params.Set("pageNo", strconv.Itoa(q.PageNo))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	path := "/api/v1.0/notifications/taxpayer"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, NewTransportError("list notifications", status, strings.TrimSpace(string(body)), nil)
	}

	var page notificationPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, NewTransportError("list notifications", status, "decode response", err)
	}
	return page.Result, nil
}

// ValidateTIN checks a TIN against an identification. A 200 means the pair is
// valid; a 404 means it is not.
func (c *Client) ValidateTIN(ctx context.Context, tin, idType, idValue string) (bool, error) {
	path := fmt.Sprintf("/api/v1.0/taxpayer/validate/%s?idType=%s&idValue=%s",
		url.PathEscape(tin), url.QueryEscape(idType), url.QueryEscape(idValue))
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	switch status {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound, http.StatusBadRequest:
		return false, nil
	default:
		return false, NewTransportError("validate tin", status, strings.TrimSpace(string(body)), nil)
	}
}

// SearchTIN looks a TIN up by identification or taxpayer name.
func (c *Client) SearchTIN(ctx context.Context, idType, idValue, taxpayerName string) (string, error) {
	params := url.Values{}
	if idType != "" {
		params.Set("idType", idType)
	}
	if idValue != "" {
		params.Set("idValue", idValue)
	}
	if taxpayerName != "" {
		params.Set("taxpayerName", taxpayerName)
	}

	path := "/api/v1.0/taxpayer/search/tin?" + params.Encode()
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", NewTransportError("search tin", status, strings.TrimSpace(string(body)), nil)
	}

	var result struct {
		TIN string `json:"tin"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", NewTransportError("search tin", status, "decode response", err)
	}
	return result.TIN, nil
}

// do performs an authenticated request and returns the raw body and status.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, int, error) {
	op := method + " " + path

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, NewTransportError(op, 0, "", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, NewTransportError(op, 0, "", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, NewTransportError(op, resp.StatusCode, "read response", err)
	}

	// A 401 invalidates the cached token so the next call re-authenticates.
	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}
	return respBody, resp.StatusCode, nil
}
