package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time {
	return f.current
}

func (f *fakeClock) advance(d time.Duration) {
	f.current = f.current.Add(d)
}

func newTestCache(ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ttl)
	c.now = clock.now
	return c, clock
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	c.Set("key", "value")

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	got, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCache_FreshnessBoundary(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)

	c.SetTTL("key", "value", time.Second)

	// One millisecond before expiry the entry is still served.
	clock.advance(time.Second - time.Millisecond)
	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)

	// Just past expiry the entry is absent and evicted.
	clock.advance(2 * time.Millisecond)
	_, ok = c.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_ExactTTLAgeIsStillFresh(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)

	c.SetTTL("key", "value", time.Second)
	clock.advance(time.Second)

	_, ok := c.Get("key")
	assert.True(t, ok)
}

func TestCache_Overwrite(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	c.Set("key", "v1")
	c.Set("key", "v2")

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "v2", got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_SetAfterExpiryDoesNotCollide(t *testing.T) {
	c, clock := newTestCache(30 * time.Second)

	c.SetTTL("key", "stale", time.Second)
	clock.advance(2 * time.Second)
	_, ok := c.Get("key")
	require.False(t, ok)

	c.SetTTL("key", "fresh", time.Second)
	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "fresh", got)
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	c.Set("key", "value")
	c.Invalidate("key")

	_, ok := c.Get("key")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	c.Invalidate("never-set")
}

func TestCache_Clear(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_DefaultTTLFallback(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTTL, c.defaultTTL)
}

func TestDependents_CoverEveryComposite(t *testing.T) {
	for composite, constituents := range Composites {
		for _, constituent := range constituents {
			assert.Contains(t, Dependents[constituent], composite,
				"invalidating %q must drop composite %q", constituent, composite)
		}
	}
}

func TestInvalidateScoped_DropsOnlyThatTenant(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	c.Set(ScopedKey(KeyCustomers, "org-1", "user-1"), "a")
	c.Set(ScopedKey(KeyCustomersInteractions, "org-1", "user-1"), "ab")
	c.Set(ScopedKey(KeyCustomers, "org-2", "user-2"), "other")

	c.InvalidateScoped(KeyCustomers, "org-1", "user-1")

	_, ok := c.Get(ScopedKey(KeyCustomers, "org-1", "user-1"))
	assert.False(t, ok)
	_, ok = c.Get(ScopedKey(KeyCustomersInteractions, "org-1", "user-1"))
	assert.False(t, ok)
	_, ok = c.Get(ScopedKey(KeyCustomers, "org-2", "user-2"))
	assert.True(t, ok, "other tenants keep their entries")
}

func TestInvalidateWithDependents_DropsComposites(t *testing.T) {
	c, _ := newTestCache(30 * time.Second)

	c.Set(KeyCustomers, "customers")
	c.Set(KeyInteractions, "interactions")
	c.Set(KeyCustomersInteractions, "combined")

	c.InvalidateWithDependents(KeyCustomers)

	_, ok := c.Get(KeyCustomers)
	assert.False(t, ok)
	_, ok = c.Get(KeyCustomersInteractions)
	assert.False(t, ok, "composite must be dropped with its constituent")
	_, ok = c.Get(KeyInteractions)
	assert.True(t, ok, "sibling entity key stays cached")
}
