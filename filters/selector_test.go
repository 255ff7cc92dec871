package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelectorAcceptsVocabulary(t *testing.T) {
	tests := []struct {
		axis     Axis
		input    string
		expected string
	}{
		{CityAxis, "chicago", "chicago"},
		{CityAxis, "New York City", "new york city"},
		{CityAxis, "  WASHINGTON ", "washington"},
		{MonthAxis, "All", "all"},
		{MonthAxis, "june", "june"},
		{DayAxis, "Sunday", "sunday"},
		{DayAxis, "ALL", "all"},
	}

	for _, tt := range tests {
		t.Run(tt.axis.Name+"/"+tt.input, func(t *testing.T) {
			value, ok := ParseSelector(tt.axis, tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseSelectorRejectsEverythingElse(t *testing.T) {
	tests := []struct {
		axis  Axis
		input string
	}{
		{CityAxis, ""},
		{CityAxis, "new york"},
		{CityAxis, "chi"},
		{CityAxis, "boston"},
		{MonthAxis, "july"},
		{MonthAxis, "1"},
		{MonthAxis, "jan"},
		{DayAxis, "mon"},
		{DayAxis, "3"},
		{DayAxis, "june"},
	}

	for _, tt := range tests {
		t.Run(tt.axis.Name+"/"+tt.input, func(t *testing.T) {
			_, ok := ParseSelector(tt.axis, tt.input)
			assert.False(t, ok)
		})
	}
}

func TestMonthNumber(t *testing.T) {
	assert.Equal(t, 0, MonthNumber(All))
	assert.Equal(t, 1, MonthNumber("january"))
	assert.Equal(t, 6, MonthNumber("June"))
	assert.Equal(t, 0, MonthNumber("december"))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "June", MonthName(6))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestNewSelection(t *testing.T) {
	assert.Equal(t, Selection{City: "washington", Month: All, Day: All}, NewSelection("washington"))
}
