package airtable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	apiBaseURL = "https://api.airtable.com/v0"
	timeout    = 15 * time.Second
)

// Record is one row of the synced table. Fields is the partial field map the
// API returns; fields the row has no value for are simply absent.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// StringField returns the trimmed string value of a field, or "" when the
// field is absent or not a string.
func (r *Record) StringField(name string) string {
	v, ok := r.Fields[name]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Client talks to the Airtable REST API for a single base/table
type Client struct {
	baseURL    string
	table      string
	token      string
	httpClient *http.Client
}

// New creates a client for the given base/table path (e.g. "appXXX/tblYYY")
// authenticated with a bearer token.
func New(table, token string) (*Client, error) {
	if table == "" {
		return nil, fmt.Errorf("table path is required")
	}
	if token == "" {
		return nil, fmt.Errorf("API token is required")
	}

	return &Client{
		baseURL: apiBaseURL,
		table:   table,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// ListAll pages through the table and returns every record. The listing is
// the source of truth for a run; any failure mid-pagination is returned as an
// error rather than a partial result.
func (c *Client) ListAll() ([]*Record, error) {
	var records []*Record
	offset := ""

	for {
		page, next, err := c.listPage(offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)

		if next == "" {
			return records, nil
		}
		offset = next
	}
}

// listPage fetches one page of records, returning the next-page offset token
// ("" on the last page).
func (c *Client) listPage(offset string) ([]*Record, string, error) {
	u := fmt.Sprintf("%s/%s", c.baseURL, c.table)
	if offset != "" {
		u += "?offset=" + url.QueryEscape(offset)
	}

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("listing records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Don't include response body in error to prevent information leakage
		return nil, "", fmt.Errorf("airtable API error (status %d)", resp.StatusCode)
	}

	var listResp struct {
		Records []*Record `json:"records"`
		Offset  string    `json:"offset"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, "", fmt.Errorf("decoding list response: %w", err)
	}

	return listResp.Records, listResp.Offset, nil
}

// UpdateFields issues a partial update for one record: only the given fields
// change, everything else on the row is preserved. An empty field map is a
// no-op and makes no network call.
func (c *Client) UpdateFields(recordID string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	payload := map[string]any{
		"fields": fields,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling update payload: %w", err)
	}

	u := fmt.Sprintf("%s/%s/%s", c.baseURL, c.table, recordID)

	req, err := http.NewRequest("PATCH", u, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Don't include response body in error to prevent information leakage
		return fmt.Errorf("airtable API error (status %d)", resp.StatusCode)
	}

	return nil
}

// setHeaders applies the auth and accept headers shared by all API calls
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Accept", "application/json")
}
