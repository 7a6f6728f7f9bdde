package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowReturnsMsg(t *testing.T) {
	msg := Show("Query copied to clipboard", Normal)()
	assert.Equal(t, ShowMsg{Title: "Query copied to clipboard", Level: Normal}, msg)
}

func TestUpdateAddsAndExpires(t *testing.T) {
	m := New()
	m.ttl = 0

	cmd := m.Update(ShowMsg{Title: "hello", Level: Success})
	require.NotNil(t, cmd)
	require.Len(t, m.Active(), 1)
	assert.Contains(t, m.View(60), "hello")

	m.Update(cmd())
	assert.True(t, m.Empty())
	assert.Equal(t, "", m.View(60))
}

func TestExpiryRemovesOnlyItsToast(t *testing.T) {
	m := New()
	m.ttl = 0
	first := m.Update(ShowMsg{Title: "one"})
	m.Update(ShowMsg{Title: "two"})

	m.Update(first())
	require.Len(t, m.Active(), 1)
	assert.Equal(t, "two", m.Active()[0].Title)
}

func TestStackIsCapped(t *testing.T) {
	m := New()
	for _, s := range []string{"a", "b", "c", "d"} {
		m.Update(ShowMsg{Title: s})
	}
	active := m.Active()
	require.Len(t, active, maxVisible)
	assert.Equal(t, "b", active[0].Title)
}
