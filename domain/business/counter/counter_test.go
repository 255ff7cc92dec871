package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeEmpty(t *testing.T) {
	c := NewCounter[string]()

	_, count, ok := c.Mode()
	assert.False(t, ok)
	assert.Equal(t, 0, count)
	assert.Empty(t, c.Breakdown())
}

func TestModeTieKeepsFirstSeen(t *testing.T) {
	c := NewCounter[string]()
	for _, value := range []string{"Tuesday", "Monday", "Monday", "Tuesday", "Sunday"} {
		c.UpdateCounter(value)
	}

	mode, count, ok := c.Mode()
	require.True(t, ok)
	assert.Equal(t, "Tuesday", mode)
	assert.Equal(t, 2, count)
}

func TestBreakdownOrder(t *testing.T) {
	c := CountAll([]string{"Customer", "Subscriber", "Dependent", "Subscriber", "Dependent", "Subscriber"}, func(s string) string {
		return s
	})

	assert.Equal(t, []Count[string]{
		{Value: "Subscriber", Counter: 3},
		{Value: "Dependent", Counter: 2},
		{Value: "Customer", Counter: 1},
	}, c.Breakdown())
	assert.Equal(t, 3, c.Len())
}

func TestPairKeys(t *testing.T) {
	type route struct{ start, end string }

	c := NewCounter[route]()
	c.UpdateCounter(route{"A", "B"})
	c.UpdateCounter(route{"B", "A"})
	c.UpdateCounter(route{"B", "A"})

	mode, count, ok := c.Mode()
	require.True(t, ok)
	assert.Equal(t, route{"B", "A"}, mode)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, c.GetCounter(route{"A", "B"}))
}

func TestBreakdownManyTies(t *testing.T) {
	c := NewCounter[int]()
	for value := 0; value < 1000; value++ {
		c.UpdateCounter(value)
	}
	c.UpdateCounter(999)

	breakdown := c.Breakdown()
	require.Len(t, breakdown, 1000)
	assert.Equal(t, Count[int]{Value: 999, Counter: 2}, breakdown[0])
	for idx := 1; idx < len(breakdown); idx++ {
		assert.Equal(t, idx-1, breakdown[idx].Value)
	}
}
