package units

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFind(t *testing.T) {
	r := NewRegistry()

	t.Run("long name", func(t *testing.T) {
		u := r.Find("second")
		require.NotNil(t, u)
		assert.Equal(t, "second", u.Num.Long)
		assert.True(t, u.Num.IsCanonical())
	})

	t.Run("plural name", func(t *testing.T) {
		u := r.Find("minutes")
		assert.Equal(t, "minute", u.Num.Long)
	})

	t.Run("short name", func(t *testing.T) {
		u := r.Find("GB")
		assert.Equal(t, "gigabyte", u.Num.Long)
		assert.Equal(t, "byte", u.Num.Canonical.Long)
	})

	t.Run("alternative spelling", func(t *testing.T) {
		u := r.Find(`"`)
		assert.Equal(t, "inch", u.Num.Long)

		u = r.Find("″")
		assert.Equal(t, "inch", u.Num.Long)
	})

	t.Run("case sensitive", func(t *testing.T) {
		// "M" is the nautical mile, "m" the meter.
		assert.Equal(t, "nautical mile", r.Find("M").Num.Long)
		assert.Equal(t, "meter", r.Find("m").Num.Long)
	})

	t.Run("compound", func(t *testing.T) {
		u := r.Find("GB/s")
		require.NotNil(t, u.Denom)
		assert.Equal(t, "gigabyte", u.Num.Long)
		assert.Equal(t, "second", u.Denom.Long)
	})

	t.Run("unknown becomes custom", func(t *testing.T) {
		u := r.Find("widgets")
		assert.True(t, u.Num.Custom)
		assert.Equal(t, "widgets", u.Num.Long)
		assert.True(t, u.Num.IsCanonical())
		assert.True(t, u.Num.Factor.Equal(decimal.NewFromInt(1)))
	})

	t.Run("percent is custom", func(t *testing.T) {
		u := r.Find("%")
		assert.True(t, u.Num.Custom)
		assert.True(t, u.IsPercent())
	})
}

func TestRegistryIsCustom(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.IsCustom("GB"))
	assert.False(t, r.IsCustom("GB/s"))
	assert.True(t, r.IsCustom("widgets"))
	assert.True(t, r.IsCustom("GB/widgets"))
}

func TestRegistryOrder(t *testing.T) {
	r := NewEmptyRegistry()
	first := NewCustom("first")
	second := NewCustom("second-one")
	r.Register(first)
	r.Register(second)

	bases := r.Bases()
	require.Len(t, bases, 2)
	assert.Same(t, first, bases[0])
	assert.Same(t, second, bases[1])
}

func TestRegistryInvariants(t *testing.T) {
	r := NewRegistry()

	for _, b := range r.Bases() {
		assert.True(t, b.Factor.IsPositive(), "factor of %s must be positive", b.Long)
		require.NotNil(t, b.Canonical, "%s has no canonical base", b.Long)
		assert.True(t, b.Canonical.IsCanonical(),
			"canonical of %s must resolve in one step", b.Long)
		if b.IsCanonical() {
			assert.True(t, b.Factor.Equal(decimal.NewFromInt(1)),
				"canonical %s must have factor 1", b.Long)
		}

		// The canonical base itself must be registered.
		found, ok := r.FindBase(b.Canonical.Long)
		require.True(t, ok, "canonical of %s is not registered", b.Long)
		assert.Same(t, b.Canonical, found)
	}
}

func TestUnitEquality(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Find("GB").Equal(r.Find("gigabyte")))
	assert.False(t, r.Find("GB").Equal(r.Find("MB")))
	assert.True(t, r.Find("GB/s").Equal(r.Find("GB/s")))
	assert.False(t, r.Find("GB/s").Equal(r.Find("GB")))
	assert.False(t, r.Find("GB/s").Equal(r.Find("GB/min")))

	// Custom units compare by spelling.
	assert.True(t, r.Find("widgets").Equal(r.Find("widgets")))
	assert.False(t, r.Find("widgets").Equal(r.Find("gadgets")))
}

func TestUnitOrdering(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, 1, r.Find("GB").Cmp(r.Find("MB")))
	assert.Equal(t, -1, r.Find("MB").Cmp(r.Find("GB")))
	assert.Equal(t, 0, r.Find("h").Cmp(r.Find("h")))

	// Total factor of a compound: numerator over denominator.
	perSecond := r.Find("GB/s")
	perMinute := r.Find("GB/min")
	assert.Equal(t, 1, perSecond.Cmp(perMinute))
	assert.True(t, perSecond.TotalFactor().GreaterThan(perMinute.TotalFactor()))
}

func TestUnitConvertible(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Find("GB").ConvertibleTo(r.Find("MB")))
	assert.True(t, r.Find("MB/s").ConvertibleTo(r.Find("GB/min")))
	assert.False(t, r.Find("GB").ConvertibleTo(r.Find("s")))
	assert.False(t, r.Find("GB/s").ConvertibleTo(r.Find("GB")))
	assert.False(t, r.Find("GB/s").ConvertibleTo(r.Find("GB/kg")))
}

func TestUnitRendering(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "GB", r.Find("gigabytes").Short())
	assert.Equal(t, "GB/s", r.Find("GB/s").Short())
	assert.Equal(t, "gigabyte/second", r.Find("GB/s").Long())
	assert.Equal(t, "fortnight", r.Find("fortnight").Short())
}
