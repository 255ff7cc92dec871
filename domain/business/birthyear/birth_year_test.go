package birthyear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func year(y int) *int {
	return &y
}

func TestSummarize(t *testing.T) {
	summary, ok := Summarize([]*int{year(1989), nil, year(1992), year(1975), year(1992), nil})
	require.True(t, ok)

	assert.Equal(t, Summary{Earliest: 1975, MostRecent: 1992, MostCommon: 1992}, summary)
}

func TestSummarizeWithoutData(t *testing.T) {
	_, ok := Summarize(nil)
	assert.False(t, ok)

	_, ok = Summarize([]*int{nil, nil})
	assert.False(t, ok)
}
