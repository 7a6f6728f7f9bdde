package nerdgraph

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{APIKey: "NRAK-TEST", Endpoint: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func TestClientSendsQuery(t *testing.T) {
	var gotKey string
	var gotBody struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("API-Key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_, _ = io.WriteString(w, `{"data":{"actor":{"account":{"nrql":{"results":[{"count":42}],"metadata":{"facets":null}}}}}}`)
	})

	res, err := c.Query(context.Background(), 1234, "SELECT count(*) FROM Transaction")
	require.NoError(t, err)

	assert.Equal(t, "NRAK-TEST", gotKey)
	assert.Contains(t, gotBody.Query, "nrql(query: $nrql)")
	assert.Equal(t, float64(1234), gotBody.Variables["accountId"])
	assert.Equal(t, "SELECT count(*) FROM Transaction", gotBody.Variables["nrql"])

	require.Len(t, res.Series, 1)
	assert.Equal(t, 42.0, res.First()["count"])
	assert.JSONEq(t, `[{"count":42}]`, string(res.Raw))
}

func TestClientGroupsFacets(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"actor":{"account":{"nrql":{
			"results":[
				{"facet":"web","appName":"web","count":10,"beginTimeSeconds":0},
				{"facet":"api","appName":"api","count":7,"beginTimeSeconds":0},
				{"facet":"web","appName":"web","count":12,"beginTimeSeconds":60}
			],
			"metadata":{"facets":["appName"]}}}}}}`)
	})

	res, err := c.Query(context.Background(), 1, "SELECT count(*) FROM Transaction FACET appName TIMESERIES")
	require.NoError(t, err)

	require.Len(t, res.Series, 2)
	assert.Equal(t, "web", res.Series[0].Name)
	assert.Len(t, res.Series[0].Data, 2)
	assert.Equal(t, "api", res.Series[1].Name)
	assert.Equal(t, []string{"appName"}, res.Facets)
	assert.Equal(t, 3, res.RowCount())
}

func TestClientGraphQLErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"actor":{"account":{"nrql":null}}},"errors":[{"message":"NRQL Syntax Error: Error at line 1 position 1"}]}`)
	})

	_, err := c.Query(context.Background(), 1, "SELEC")
	var qe *ErrQuery
	require.True(t, errors.As(err, &qe), "got %v", err)
	assert.Equal(t, []string{"NRQL Syntax Error: Error at line 1 position 1"}, qe.Messages)
}

func TestClientStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header map[string]string
		check  func(t *testing.T, err error)
	}{
		{"rate limit", http.StatusTooManyRequests, map[string]string{"Retry-After": "3"}, func(t *testing.T, err error) {
			var rl *ErrRateLimit
			require.True(t, errors.As(err, &rl))
			assert.Equal(t, 3*time.Second, rl.RetryAfter)
		}},
		{"unauthorized", http.StatusUnauthorized, nil, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrUnauthorized)
		}},
		{"server error", http.StatusBadGateway, nil, func(t *testing.T, err error) {
			var un *ErrUnavailable
			assert.True(t, errors.As(err, &un))
		}},
		{"bad request", http.StatusBadRequest, nil, func(t *testing.T, err error) {
			require.Error(t, err)
			assert.Contains(t, err.Error(), "400")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			})
			_, err := c.Query(context.Background(), 1, "SELECT 1 FROM X")
			tt.check(t, err)
		})
	}
}

func TestClientInvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})
	_, err := c.Query(context.Background(), 1, "q")
	var un *ErrUnavailable
	assert.True(t, errors.As(err, &un), "got %v", err)
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestConfigURL(t *testing.T) {
	assert.Equal(t, EndpointUS, Config{Region: "US"}.URL())
	assert.Equal(t, EndpointEU, Config{Region: "EU"}.URL())
	assert.Equal(t, "http://local", Config{Region: "EU", Endpoint: "http://local"}.URL())
}

func TestClientEngine(t *testing.T) {
	c, err := NewClient(Config{APIKey: "k", Region: "EU"})
	require.NoError(t, err)
	assert.Equal(t, "nerdgraph-eu", c.Engine())
}

func TestFacetName(t *testing.T) {
	assert.Equal(t, "", FacetName(map[string]any{}))
	assert.Equal(t, "web", FacetName(map[string]any{"facet": "web"}))
	assert.Equal(t, "web, 200", FacetName(map[string]any{"facet": []any{"web", "200"}}))
	assert.Equal(t, "404", FacetName(map[string]any{"facet": 404.0}))
}

func TestResultHelpers(t *testing.T) {
	var nilRes *Result
	assert.Nil(t, nilRes.First())
	assert.True(t, nilRes.Empty())

	res := &Result{Series: []Series{{Name: "a"}, {Name: "b", Data: []map[string]any{{"x": 1.0}}}}}
	assert.Nil(t, res.First(), "first series has no data")
	assert.Len(t, res.Rows(), 1)
	assert.False(t, res.Empty())
}
