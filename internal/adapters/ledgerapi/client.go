// Package ledgerapi talks JSON over HTTP to the remote ledger that owns journal entries and receivables.
package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/organic_store_accounting/internal/apperrors"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/organic_store_accounting/internal/metrics"
	"github.com/SscSPs/organic_store_accounting/internal/middleware"
)

const defaultTimeout = 30 * time.Second

// Client implements the ledger repository ports against the remote ledger API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the HTTP client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a client for the ledger API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portsrepo.LedgerRepositoryFacade = (*Client)(nil)

type listEntriesResponse struct {
	Entries   []domain.JournalEntry `json:"entries"`
	NextToken *string               `json:"nextToken"`
}

// ListJournalEntries fetches one page of journal entries.
func (c *Client) ListJournalEntries(ctx context.Context, params portsrepo.ListEntriesParams) ([]domain.JournalEntry, *string, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.NextToken != nil && *params.NextToken != "" {
		query.Set("nextToken", *params.NextToken)
	}

	path := "/journal-entries"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result listEntriesResponse
	if err := c.get(ctx, "list_entries", path, &result); err != nil {
		return nil, nil, err
	}
	if result.Entries == nil {
		result.Entries = []domain.JournalEntry{}
	}
	if result.NextToken != nil && *result.NextToken == "" {
		result.NextToken = nil
	}
	return result.Entries, result.NextToken, nil
}

type listReceivablesResponse struct {
	Receivables []domain.Receivable `json:"receivables"`
}

// ListReceivables fetches every receivable.
func (c *Client) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	var result listReceivablesResponse
	if err := c.get(ctx, "list_receivables", "/receivables", &result); err != nil {
		return nil, err
	}
	if result.Receivables == nil {
		result.Receivables = []domain.Receivable{}
	}
	return result.Receivables, nil
}

// GetAgingReport fetches the precomputed aging report. A ledger without one answers 404,
// which is reported as a nil report.
func (c *Client) GetAgingReport(ctx context.Context) (*domain.AgingReport, error) {
	var result domain.AgingReport
	err := c.get(ctx, "aging_report", "/receivables/aging", &result)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type postEntryResponse struct {
	Entry domain.JournalEntry `json:"entry"`
}

// rejectionBody is the error document returned when the ledger refuses an entry.
type rejectionBody struct {
	Message        string           `json:"message"`
	Error          string           `json:"error"`
	Code           string           `json:"code"`
	MissingAccount string           `json:"missingAccount"`
	Suggestion     string           `json:"suggestion"`
	TotalDebit     *decimal.Decimal `json:"totalDebit"`
	TotalCredit    *decimal.Decimal `json:"totalCredit"`
}

// PostJournalEntry submits an entry. Refusals come back as *domain.PostRejection.
func (c *Client) PostJournalEntry(ctx context.Context, payload domain.PostEntryPayload) (*domain.JournalEntry, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/journal-entries", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do("post_entry", req)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, decodeRejection(status, body)
	}

	var result postEntryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decode post response: %v", apperrors.ErrUpstream, err)
	}
	return &result.Entry, nil
}

// decodeRejection turns an error response into a typed rejection. The structured code wins;
// without one the hint fields, the status and finally the message text are consulted in that order.
func decodeRejection(status int, body []byte) *domain.PostRejection {
	var doc rejectionBody
	if err := json.Unmarshal(body, &doc); err != nil {
		doc.Message = strings.TrimSpace(string(body))
	}
	message := doc.Message
	if message == "" {
		message = doc.Error
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &domain.PostRejection{
		Code:           rejectionCode(status, doc, message),
		StatusCode:     status,
		Message:        message,
		MissingAccount: doc.MissingAccount,
		Suggestion:     doc.Suggestion,
		TotalDebit:     doc.TotalDebit,
		TotalCredit:    doc.TotalCredit,
	}
}

// Phrases that only appear when the reference number is taken. Bare "trùng" also occurs in
// "không trùng khớp" (does not match) and must not be listed.
var duplicatePhrases = []string{"duplicate", "already exists", "đã tồn tại", "bị trùng", "trùng số chứng từ", "trùng lặp"}

func rejectionCode(status int, doc rejectionBody, message string) domain.RejectionCode {
	switch code := domain.RejectionCode(strings.ToUpper(strings.TrimSpace(doc.Code))); code {
	case domain.RejectDuplicateReference, domain.RejectUnbalanced, domain.RejectMissingAccount, domain.RejectInvalid:
		return code
	}

	lower := strings.ToLower(message)
	switch {
	case doc.MissingAccount != "":
		return domain.RejectMissingAccount
	case doc.TotalDebit != nil && doc.TotalCredit != nil:
		return domain.RejectUnbalanced
	case status == http.StatusConflict:
		return domain.RejectDuplicateReference
	case status < 500 && containsAny(lower, duplicatePhrases):
		return domain.RejectDuplicateReference
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.RejectInvalid
	default:
		return domain.RejectUnknown
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID := middleware.GetRequestIDFromCtx(ctx); requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}
	return req, nil
}

func (c *Client) get(ctx context.Context, operation, path string, result any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	status, body, err := c.do(operation, req)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
	}
	if status >= 400 {
		var doc rejectionBody
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &doc) == nil {
			if doc.Message != "" {
				msg = doc.Message
			} else if doc.Error != "" {
				msg = doc.Error
			}
		}
		return fmt.Errorf("%w: ledger API error (%d): %s", apperrors.ErrUpstream, status, msg)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: decode response: %v", apperrors.ErrUpstream, err)
	}
	return nil
}

func (c *Client) do(operation string, req *http.Request) (int, []byte, error) {
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.LedgerAPIRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: request failed: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read response: %v", apperrors.ErrUpstream, err)
	}

	outcome = strconv.Itoa(resp.StatusCode)
	return resp.StatusCode, body, nil
}
