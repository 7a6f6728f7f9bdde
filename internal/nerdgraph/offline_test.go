package nerdgraph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedOffline() *Offline {
	now := time.Date(2026, 3, 2, 10, 7, 0, 0, time.UTC)
	return &Offline{Now: func() time.Time { return now }}
}

func TestOfflineSingleAggregate(t *testing.T) {
	res, err := fixedOffline().Query(context.Background(), 1, "SELECT count(*), average(duration) FROM Transaction")
	require.NoError(t, err)

	require.Len(t, res.Series, 1)
	first := res.First()
	require.NotNil(t, first)
	assert.Contains(t, first, "count")
	assert.Contains(t, first, "average.duration")
	assert.IsType(t, float64(0), first["count"])
}

func TestOfflineDeterministic(t *testing.T) {
	o := fixedOffline()
	a, err := o.Query(context.Background(), 1, "SELECT count(*) FROM Transaction FACET appName")
	require.NoError(t, err)
	b, err := o.Query(context.Background(), 1, "select  count(*) from Transaction facet appName")
	require.NoError(t, err)

	assert.JSONEq(t, string(a.Raw), string(b.Raw))
}

func TestOfflineFacetsSortedDescending(t *testing.T) {
	res, err := fixedOffline().Query(context.Background(), 1, "SELECT count(*) FROM Transaction FACET appName LIMIT 3")
	require.NoError(t, err)

	require.Len(t, res.Series, 3)
	assert.Equal(t, []string{"appName"}, res.Facets)
	prev := res.Series[0].Data[0]["count"].(float64)
	for _, s := range res.Series[1:] {
		cur := s.Data[0]["count"].(float64)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, res.Series[0].Name, res.Series[0].Data[0]["appName"])
}

func TestOfflineTimeseries(t *testing.T) {
	res, err := fixedOffline().Query(context.Background(), 1, "SELECT count(*) FROM Transaction FACET appName LIMIT 2 TIMESERIES 1 minute")
	require.NoError(t, err)

	require.Len(t, res.Series, 2)
	for _, s := range res.Series {
		require.Len(t, s.Data, offlineBuckets)
		for i := 1; i < len(s.Data); i++ {
			prev := s.Data[i-1]["endTimeSeconds"].(float64)
			assert.Equal(t, prev, s.Data[i]["beginTimeSeconds"], "buckets are contiguous")
		}
	}
}

func TestOfflineTimeseriesHugeBucket(t *testing.T) {
	res, err := fixedOffline().Query(context.Background(), 1, "SELECT count(*) FROM Log TIMESERIES 99999999999999 weeks")
	require.NoError(t, err)
	require.Len(t, res.Series, 1)
	data := res.Series[0].Data
	require.Len(t, data, offlineBuckets)
	width := data[0]["endTimeSeconds"].(float64) - data[0]["beginTimeSeconds"].(float64)
	assert.Equal(t, defaultBucket.Seconds(), width)
}

func TestOfflineTimeseriesShiftsWithClock(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	o := &Offline{Now: func() time.Time { return now }}
	q := "SELECT count(*) FROM Transaction TIMESERIES 1 minute"

	a, err := o.Query(context.Background(), 1, q)
	require.NoError(t, err)
	now = now.Add(time.Minute)
	b, err := o.Query(context.Background(), 1, q)
	require.NoError(t, err)

	// The window slides by one bucket; overlapping buckets keep their values.
	assert.Equal(t, a.Series[0].Data[1]["count"], b.Series[0].Data[0]["count"])
}

func TestOfflineHistogramAndFunnel(t *testing.T) {
	res, err := fixedOffline().Query(context.Background(), 1, "SELECT histogram(duration, 2, 20) FROM Transaction")
	require.NoError(t, err)
	buckets, ok := res.First()["histogram.duration"].([]any)
	require.True(t, ok)
	assert.Len(t, buckets, 20)

	res, err = fixedOffline().Query(context.Background(), 1,
		"SELECT funnel(session, WHERE pageUrl LIKE '%cart%' AS 'Cart', WHERE pageUrl LIKE '%checkout%' AS 'Checkout') FROM PageView")
	require.NoError(t, err)
	f, ok := res.First()["funnel.session"].(map[string]any)
	require.True(t, ok)
	steps := f["steps"].([]any)
	require.Len(t, steps, 2)
	assert.GreaterOrEqual(t, steps[0].(float64), steps[1].(float64))
}

func TestOfflineShowEventTypes(t *testing.T) {
	res, err := fixedOffline().Query(context.Background(), 1, "SHOW EVENT TYPES")
	require.NoError(t, err)
	assert.Contains(t, res.First()["eventTypes"], "Transaction")
}

func TestOfflineRawSelect(t *testing.T) {
	res, err := fixedOffline().Query(context.Background(), 1, "SELECT * FROM Transaction LIMIT 10")
	require.NoError(t, err)
	assert.Equal(t, offlineRawRows, res.RowCount())
	assert.Contains(t, res.First(), "duration")
}

func TestOfflineSyntaxError(t *testing.T) {
	_, err := fixedOffline().Query(context.Background(), 1, "count(*) FROM Transaction")
	var qe *ErrQuery
	assert.True(t, errors.As(err, &qe), "got %v", err)

	_, err = fixedOffline().Query(context.Background(), 1, "SELECT count(*)")
	assert.True(t, errors.As(err, &qe), "got %v", err)
}

func TestOfflineCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := fixedOffline().Query(ctx, 1, "SELECT count(*) FROM Transaction")
	assert.ErrorIs(t, err, context.Canceled)
}
