package nerdgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const nrqlQuery = `query($accountId: Int!, $nrql: Nrql!) {
  actor {
    account(id: $accountId) {
      nrql(query: $nrql) {
        results
        metadata { facets }
      }
    }
  }
}`

// Client queries the NerdGraph GraphQL API.
type Client struct {
	apiKey string
	url    string
	region string
	http   *http.Client
}

// NewClient creates a NerdGraph client. The API key is required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("nerdgraph: API key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	region := strings.ToLower(cfg.Region)
	if region == "" {
		region = "us"
	}
	return &Client{
		apiKey: cfg.APIKey,
		url:    cfg.URL(),
		region: region,
		http:   &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) Engine() string {
	return "nerdgraph-" + c.region
}

func (c *Client) Query(ctx context.Context, accountID int, nrql string) (*Result, error) {
	payload, err := json.Marshal(map[string]any{
		"query": nrqlQuery,
		"variables": map[string]any{
			"accountId": accountID,
			"nrql":      nrql,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}

	if err := classifyStatus(resp, body); err != nil {
		return nil, err
	}
	return parseResponse(body)
}

func classifyStatus(resp *http.Response, body []byte) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return &ErrRateLimit{
			RetryAfter: retryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return &ErrUnavailable{Err: fmt.Errorf("status %d", resp.StatusCode)}
	default:
		return fmt.Errorf("nerdgraph: unexpected status %d: %s", resp.StatusCode, snippet(body))
	}
}

func retryAfter(h string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// parseResponse extracts results from a GraphQL response body. GraphQL
// reports query errors with a 200 status, so the errors array is checked
// first.
func parseResponse(body []byte) (*Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, &ErrUnavailable{Err: fmt.Errorf("invalid JSON response: %s", snippet(body))}
	}

	if errs := gjson.GetBytes(body, "errors.#.message").Array(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, m := range errs {
			msgs = append(msgs, m.String())
		}
		return nil, &ErrQuery{Messages: msgs}
	}

	nrql := gjson.GetBytes(body, "data.actor.account.nrql")
	if !nrql.Exists() || nrql.Type == gjson.Null {
		return nil, &ErrQuery{Messages: []string{"no nrql result in response"}}
	}

	results := nrql.Get("results")
	var facets []string
	for _, f := range nrql.Get("metadata.facets").Array() {
		facets = append(facets, f.String())
	}

	var rows []map[string]any
	for _, r := range results.Array() {
		if m, ok := r.Value().(map[string]any); ok {
			rows = append(rows, m)
		}
	}

	return &Result{
		Series: GroupByFacet(rows),
		Facets: facets,
		Raw:    json.RawMessage(results.Raw),
	}, nil
}

// GroupByFacet splits rows into one series per facet value, in order of
// first appearance. Rows without a facet form a single unnamed series.
func GroupByFacet(rows []map[string]any) []Series {
	if len(rows) == 0 {
		return nil
	}
	var series []Series
	index := make(map[string]int)
	for _, row := range rows {
		name := FacetName(row)
		i, ok := index[name]
		if !ok {
			i = len(series)
			index[name] = i
			series = append(series, Series{Name: name})
		}
		series[i].Data = append(series[i].Data, row)
	}
	return series
}

// FacetName renders a row's facet value. Multi-attribute facets arrive as
// arrays and are joined with ", ".
func FacetName(row map[string]any) string {
	switch v := row["facet"].(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
