package querycache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMissesWhenAbsent(t *testing.T) {
	c := New()

	_, ok := c.Get(KeyTokenBalance, "user-1")
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	c := New()
	c.Set(KeyTokenBalance, "user-1", int64(42))

	v, ok := c.Get(KeyTokenBalance, "user-1")
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	// other scopes are unaffected
	_, ok = c.Get(KeyTokenBalance, "user-2")
	assert.False(t, ok)
}

func TestInvalidateMarksStale(t *testing.T) {
	c := New()
	c.Set(KeyTokenBalance, "user-1", int64(42))
	c.Set(KeyTokenBalance, "user-2", int64(7))
	c.Set(KeyProducts, "", "unrelated")

	c.Invalidate(KeyTokenBalance)

	_, ok := c.Get(KeyTokenBalance, "user-1")
	assert.False(t, ok, "stale entries must miss")
	assert.True(t, c.IsStale(KeyTokenBalance, "user-1"))
	assert.True(t, c.IsStale(KeyTokenBalance, "user-2"), "every scope of the key goes stale")

	v, ok := c.Get(KeyProducts, "")
	assert.True(t, ok, "other keys stay fresh")
	assert.Equal(t, "unrelated", v)
}

func TestInvalidateUnknownKeyIsNoop(t *testing.T) {
	c := New()
	c.Invalidate("neverStored")

	assert.False(t, c.IsStale("neverStored", ""))
}

func TestSetRefreshesStaleEntry(t *testing.T) {
	c := New()
	c.Set(KeyProducts, "", "old")
	c.Invalidate(KeyProducts)

	c.Set(KeyProducts, "", "new")
	v, ok := c.Get(KeyProducts, "")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
	assert.False(t, c.IsStale(KeyProducts, ""))
}

func TestGlobalScopeInvalidation(t *testing.T) {
	c := New()
	c.Set(KeyStripeConfigured, "", true)

	c.Invalidate(KeyStripeConfigured)

	_, ok := c.Get(KeyStripeConfigured, "")
	assert.False(t, ok)
}
