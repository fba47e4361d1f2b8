package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_HitWithinTTL(t *testing.T) {
	c := New()
	c.Put("search:deep work:cal newport", "payload")

	got, ok := c.Get("search:deep work:cal newport")
	require.True(t, ok)
	assert.Equal(t, "payload", got)
}

func TestGet_MissAfterTTL(t *testing.T) {
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }
	c.Put("search:deep work:cal newport", "payload")

	// one second past the TTL
	c.now = func() time.Time { return now.Add(DefaultTTL + time.Second) }

	_, ok := c.Get("search:deep work:cal newport")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be dropped on read")
}

func TestGet_UnknownKey(t *testing.T) {
	c := New()

	_, ok := c.Get("details:missing:nobody")
	assert.False(t, ok)
}

func TestPut_ReplacesExisting(t *testing.T) {
	c := New()
	c.Put("k", "old")
	c.Put("k", "new")

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestKey_LowercasesTitleAndAuthor(t *testing.T) {
	key := Key("search", "Deep Work", "Cal Newport")
	assert.Equal(t, "search:deep work:cal newport", key)
}
