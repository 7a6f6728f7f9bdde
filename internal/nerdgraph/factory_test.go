package nerdgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuerier_DemoWithoutKey(t *testing.T) {
	q, err := NewQuerier(DefaultConfig(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "offline", q.Engine())
}

func TestNewQuerier_Client(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = "NRAK-test"
	cfg.Region = "EU"

	q, err := NewQuerier(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "nerdgraph-eu", q.Engine())
	_, ok := q.(*RetryQuerier)
	assert.True(t, ok)
}
