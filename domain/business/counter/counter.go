package counter

import "sort"

// Count pairs a value with the amount of times it was seen
type Count[K comparable] struct {
	Value   K   `json:"value"`
	Counter int `json:"counter"`
}

// Counter counts occurrences of values and remembers the order in which each value was first
// seen. Ties are always broken in favour of the value seen first.
type Counter[K comparable] struct {
	counters map[K]int
	order    []K
}

func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{
		counters: make(map[K]int),
	}
}

// CountAll returns a Counter with the key of each element already counted
func CountAll[T any, K comparable](elements []T, key func(T) K) *Counter[K] {
	c := NewCounter[K]()
	for idx := range elements {
		c.UpdateCounter(key(elements[idx]))
	}
	return c
}

func (c *Counter[K]) UpdateCounter(value K) {
	if _, ok := c.counters[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counters[value] += 1
}

func (c *Counter[K]) GetCounter(value K) int {
	return c.counters[value]
}

// Len returns the amount of distinct values counted
func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Mode returns the most common value and its count. The last return value is false if nothing
// was counted.
func (c *Counter[K]) Mode() (K, int, bool) {
	var mode K
	best := 0
	for _, value := range c.order {
		if c.counters[value] > best {
			mode = value
			best = c.counters[value]
		}
	}
	return mode, best, best > 0
}

// Breakdown returns every value with its count, most common first. Values with the same count
// keep the order in which they were first seen.
func (c *Counter[K]) Breakdown() []Count[K] {
	breakdown := make([]Count[K], 0, len(c.order))
	for _, value := range c.order {
		breakdown = append(breakdown, Count[K]{Value: value, Counter: c.counters[value]})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Counter > breakdown[j].Counter
	})
	return breakdown
}
