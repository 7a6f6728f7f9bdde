package nerdgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nrqlkit/nrqltutor/internal/nrql"
)

const (
	offlineBuckets   = 12
	offlineFacets    = 5
	offlineRawRows   = 10
	defaultBucket    = 5 * time.Minute
	defaultHistogram = 10
)

// Offline synthesizes plausible results from the shape of the query, so
// lessons work without an API key. Results are deterministic for a given
// query and clock.
type Offline struct {
	// Now is the clock used to place TIMESERIES buckets.
	Now func() time.Time
}

// NewOffline returns an offline engine using the wall clock.
func NewOffline() *Offline {
	return &Offline{Now: time.Now}
}

func (o *Offline) Engine() string { return "offline" }

func (o *Offline) Query(ctx context.Context, _ int, q string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// For nested aggregation only the outer clauses shape the result.
	parsed := nrql.Parse(q)
	if parsed.Show == "" && len(parsed.Select) == 0 {
		return nil, &ErrQuery{Messages: []string{"NRQL Syntax Error: expected SELECT clause"}}
	}
	if parsed.Show == "" && parsed.From == "" {
		return nil, &ErrQuery{Messages: []string{"NRQL Syntax Error: expected FROM clause"}}
	}

	g := &generator{query: parsed, seed: seedOf(q), now: o.now()}
	rows := g.rows()

	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode offline result: %w", err)
	}
	return &Result{
		Series: GroupByFacet(rows),
		Facets: parsed.Facets,
		Raw:    raw,
	}, nil
}

func (o *Offline) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func seedOf(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.Join(strings.Fields(s), " "))))
	return h.Sum64()
}

type generator struct {
	query nrql.Query
	seed  uint64
	now   time.Time
}

func (g *generator) rng(stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(g.seed, stream))
}

func (g *generator) rows() []map[string]any {
	q := g.query
	if q.Show != "" {
		return []map[string]any{{"eventTypes": toAny(eventTypes)}}
	}

	if isRawSelect(q.Select) {
		return g.rawRows()
	}

	facets := g.facetValues()
	var rows []map[string]any
	for fi, facet := range facets {
		if q.Timeseries {
			bucket := q.Bucket
			if bucket < time.Second {
				bucket = defaultBucket
			}
			end := g.now.Truncate(bucket)
			for b := 0; b < offlineBuckets; b++ {
				begin := end.Add(-time.Duration(offlineBuckets-b) * bucket)
				slot := uint64(begin.Unix() / int64(bucket/time.Second))
				row := g.aggregates(uint64(fi)<<32|slot, fi)
				row["beginTimeSeconds"] = float64(begin.Unix())
				row["endTimeSeconds"] = float64(begin.Add(bucket).Unix())
				g.tagFacet(row, facet)
				rows = append(rows, row)
			}
			continue
		}
		row := g.aggregates(uint64(fi), fi)
		g.tagFacet(row, facet)
		rows = append(rows, row)
	}

	if len(q.Facets) > 0 && !q.Timeseries && len(q.Select) > 0 {
		key := q.Select[0].Key()
		sort.SliceStable(rows, func(i, j int) bool {
			return numeric(rows[i][key]) > numeric(rows[j][key])
		})
	}
	return rows
}

// facetValues returns one entry per facet group; a nil entry stands for an
// unfaceted query.
func (g *generator) facetValues() [][]string {
	if len(g.query.Facets) == 0 {
		return [][]string{nil}
	}
	n := offlineFacets
	if g.query.Limit > 0 && g.query.Limit < n {
		n = g.query.Limit
	}
	out := make([][]string, n)
	for i := range n {
		vals := make([]string, len(g.query.Facets))
		for j, attr := range g.query.Facets {
			vals[j] = facetValue(attr, i+j)
		}
		out[i] = vals
	}
	return out
}

func (g *generator) tagFacet(row map[string]any, facet []string) {
	if facet == nil {
		return
	}
	for i, attr := range g.query.Facets {
		row[attr] = facet[i]
	}
	if len(facet) == 1 {
		row["facet"] = facet[0]
		return
	}
	row["facet"] = toAny(facet)
}

func (g *generator) aggregates(stream uint64, facetIndex int) map[string]any {
	r := g.rng(stream)
	row := make(map[string]any, len(g.query.Select))
	// Later facets are smaller so the default sort order looks natural.
	scale := 1 / float64(facetIndex+1)
	for _, it := range g.query.Select {
		row[it.Key()] = g.value(it, r, scale)
	}
	return row
}

func (g *generator) value(it nrql.Item, r *rand.Rand, scale float64) any {
	switch strings.ToLower(it.Func) {
	case "count", "uniquecount", "sum", "filter", "rate":
		return math.Round(scale * (200 + r.Float64()*4800))
	case "average", "avg", "median", "max", "min", "latest", "stddev", "earliest":
		return round3(scale * (0.05 + r.Float64()*1.5))
	case "percentage":
		return round3(r.Float64() * 100)
	case "percentile":
		out := make(map[string]any)
		base := 0.1 + r.Float64()
		if len(it.Args) > 1 {
			for i, p := range it.Args[1:] {
				out[strings.TrimSpace(p)] = round3(base * (1 + float64(i)*0.8))
			}
		}
		if len(out) == 0 {
			out["50"] = round3(base)
		}
		return out
	case "histogram":
		n := defaultHistogram
		if len(it.Args) > 2 {
			if v, err := strconv.Atoi(strings.TrimSpace(it.Args[2])); err == nil && v > 0 {
				n = v
			}
		}
		buckets := make([]any, n)
		peak := r.Float64() * float64(n)
		for i := range buckets {
			d := float64(i) - peak
			buckets[i] = math.Round(scale * 1000 * math.Exp(-d*d/8))
		}
		return buckets
	case "funnel":
		steps := max(len(it.Args)-1, 1)
		out := make([]any, steps)
		v := 1000 + r.Float64()*9000
		for i := range out {
			out[i] = math.Round(v)
			v *= 0.3 + r.Float64()*0.5
		}
		return map[string]any{"steps": out}
	case "uniques":
		attr := ""
		if len(it.Args) > 0 {
			attr = it.Args[0]
		}
		vals := make([]any, offlineFacets)
		for i := range vals {
			vals[i] = facetValue(attr, i)
		}
		return vals
	case "keyset":
		return map[string]any{
			"allKeys":     toAny(eventAttributes),
			"numericKeys": toAny([]string{"duration", "databaseDuration", "externalDuration"}),
			"stringKeys":  toAny([]string{"appName", "host", "name", "request.uri"}),
		}
	case "":
		if strings.ContainsAny(it.Text, "+-*/") {
			return round3(scale * (1 + r.Float64()*20))
		}
		return facetValue(it.Text, r.IntN(offlineFacets))
	default:
		return round3(scale * r.Float64() * 100)
	}
}

func (g *generator) rawRows() []map[string]any {
	r := g.rng(0)
	rows := make([]map[string]any, offlineRawRows)
	for i := range rows {
		ts := g.now.Add(-time.Duration(i*37) * time.Second)
		rows[i] = map[string]any{
			"timestamp": float64(ts.UnixMilli()),
			"appName":   facetValue("appName", r.IntN(offlineFacets)),
			"name":      facetValue("name", r.IntN(offlineFacets)),
			"duration":  round3(0.02 + r.Float64()),
			"host":      facetValue("host", r.IntN(offlineFacets)),
		}
		for _, it := range g.query.Select {
			if it.Text != "*" && it.Func == "" {
				rows[i][it.Key()] = facetValue(it.Text, r.IntN(offlineFacets))
			}
		}
	}
	return rows
}

func isRawSelect(items []nrql.Item) bool {
	for _, it := range items {
		if it.Func != "" || strings.ContainsAny(it.Text, "+-/") {
			return false
		}
	}
	return len(items) > 0
}

var eventTypes = []string{"Transaction", "TransactionError", "PageView", "PageAction", "Log", "SystemSample", "Span"}

var eventAttributes = []string{"appName", "databaseDuration", "duration", "externalDuration", "host", "httpResponseCode", "name", "request.method", "request.uri", "timestamp"}

var knownFacets = map[string][]string{
	"appname":          {"checkout-service", "storefront-web", "inventory-api", "payments-worker", "search-api"},
	"name":             {"WebTransaction/Go/checkout", "WebTransaction/Go/cart", "WebTransaction/Go/search", "WebTransaction/Go/login", "OtherTransaction/Go/sync"},
	"host":             {"ip-10-0-1-12", "ip-10-0-1-47", "ip-10-0-2-8", "ip-10-0-2-91", "ip-10-0-3-15"},
	"request.uri":      {"/api/cart", "/api/checkout", "/login", "/search", "/api/products"},
	"httpresponsecode": {"200", "302", "404", "500", "503"},
	"countrycode":      {"US", "DE", "IN", "BR", "JP"},
	"useragentos":      {"Mac", "Windows", "Android", "iOS", "Linux"},
	"pageurl":          {"https://shop.example.com/", "https://shop.example.com/cart", "https://shop.example.com/checkout", "https://shop.example.com/search", "https://shop.example.com/login"},
	"level":            {"INFO", "WARN", "ERROR", "DEBUG", "TRACE"},
}

func facetValue(attr string, i int) string {
	if vals, ok := knownFacets[strings.ToLower(strings.Trim(attr, "`"))]; ok {
		return vals[i%len(vals)]
	}
	base := strings.Trim(attr, "`")
	if k := strings.LastIndexByte(base, '.'); k >= 0 {
		base = base[k+1:]
	}
	if base == "" {
		base = "value"
	}
	return fmt.Sprintf("%s-%d", base, i%offlineFacets+1)
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func numeric(v any) float64 {
	f, _ := v.(float64)
	return f
}
