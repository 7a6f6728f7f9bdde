package nrql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	q := Parse("SELECT count(*), average(duration) AS 'avg' FROM Transaction WHERE appName = 'checkout' FACET name LIMIT 5 SINCE 1 hour ago")

	require.Len(t, q.Select, 2)
	assert.Equal(t, "count", q.Select[0].Func)
	assert.Equal(t, "count", q.Select[0].Key())
	assert.Equal(t, "avg", q.Select[1].Key())
	assert.Equal(t, "Transaction", q.From)
	assert.Equal(t, "appName = 'checkout'", q.Where)
	assert.Equal(t, []string{"name"}, q.Facets)
	assert.Equal(t, 5, q.Limit)
	assert.False(t, q.Timeseries)
}

func TestParseFromFirst(t *testing.T) {
	q := Parse("FROM PageView SELECT uniqueCount(session) TIMESERIES 5 minutes")

	assert.Equal(t, "PageView", q.From)
	require.Len(t, q.Select, 1)
	assert.Equal(t, "uniqueCount.session", q.Select[0].Key())
	assert.True(t, q.Timeseries)
	assert.Equal(t, 5*time.Minute, q.Bucket)
}

func TestParseTimeseriesAuto(t *testing.T) {
	q := Parse("SELECT count(*) FROM Transaction TIMESERIES AUTO")
	assert.True(t, q.Timeseries)
	assert.Zero(t, q.Bucket)
}

func TestParseBucketBounds(t *testing.T) {
	tests := []struct {
		clause string
		want   time.Duration
	}{
		{"TIMESERIES 1 week", 7 * 24 * time.Hour},
		{"TIMESERIES 366 days", 366 * 24 * time.Hour},
		{"TIMESERIES 367 days", 0},
		{"TIMESERIES 99999999999999 weeks", 0},
		{"TIMESERIES 9223372036854775807 seconds", 0},
		{"TIMESERIES -5 minutes", 0},
	}
	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			q := Parse("SELECT count(*) FROM Log " + tt.clause)
			assert.True(t, q.Timeseries)
			assert.Equal(t, tt.want, q.Bucket)
		})
	}
}

func TestParseKeywordsInsideParens(t *testing.T) {
	q := Parse("SELECT funnel(session, WHERE pageUrl LIKE '%/cart%' AS 'Cart', WHERE pageUrl LIKE '%/checkout%' AS 'Checkout') FROM PageView SINCE 1 week ago")

	require.Len(t, q.Select, 1)
	it := q.Select[0]
	assert.Equal(t, "funnel", it.Func)
	require.Len(t, it.Args, 3)
	assert.Equal(t, "session", it.Args[0])
	assert.Equal(t, "PageView", q.From)
	assert.Empty(t, q.Where)
}

func TestParseMathIsNotAFunction(t *testing.T) {
	q := Parse("SELECT count(*) / uniqueCount(session) AS 'Pages per session' FROM PageView")

	require.Len(t, q.Select, 1)
	assert.Empty(t, q.Select[0].Func)
	assert.Equal(t, "Pages per session", q.Select[0].Key())
}

func TestParseMathWithoutAlias(t *testing.T) {
	q := Parse("SELECT count(*) / 60 FROM Transaction")
	require.Len(t, q.Select, 1)
	assert.Equal(t, "count(*) / 60", q.Select[0].Key())
}

func TestParseNested(t *testing.T) {
	q := Parse("SELECT average(cnt) FROM (SELECT count(*) AS cnt FROM Transaction FACET appName TIMESERIES 1 minute) SINCE 1 hour ago")

	require.NotNil(t, q.Subquery)
	assert.Equal(t, "Transaction", q.From)
	assert.Equal(t, []string{"appName"}, q.Subquery.Facets)
	assert.True(t, q.Subquery.Timeseries)
	assert.Empty(t, q.Facets)
	assert.False(t, q.Timeseries)
	assert.Equal(t, "average.cnt", q.Select[0].Key())
}

func TestParseMultiFacet(t *testing.T) {
	q := Parse("SELECT count(*) FROM Transaction FACET appName, `request.uri`")
	assert.Equal(t, []string{"appName", "request.uri"}, q.Facets)
}

func TestParseShow(t *testing.T) {
	q := Parse("SHOW EVENT TYPES SINCE 1 day ago")
	assert.Equal(t, "EVENT TYPES", q.Show)
}

func TestParseCompareWith(t *testing.T) {
	q := Parse("SELECT count(*) FROM Transaction SINCE 1 day ago COMPARE WITH 1 week ago TIMESERIES")
	assert.True(t, q.Timeseries)
}

func TestParseKeywordInString(t *testing.T) {
	q := Parse("SELECT count(*) FROM Log WHERE message LIKE '%facet timeseries%'")
	assert.Empty(t, q.Facets)
	assert.False(t, q.Timeseries)
	assert.Equal(t, "message LIKE '%facet timeseries%'", q.Where)
}

func TestParseLimitMax(t *testing.T) {
	assert.Equal(t, -1, Parse("SELECT count(*) FROM X FACET y LIMIT MAX").Limit)
}
