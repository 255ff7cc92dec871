package filters

import (
	"strings"
	"time"

	"bikeshare/utils"
)

const All = "all"

// Axis is one of the filters the user chooses: city, month or day
type Axis struct {
	Name       string
	Vocabulary []string
	Question   string
	Hint       string
}

var (
	Cities = []string{"chicago", "new york city", "washington"}
	Months = []string{All, "january", "february", "march", "april", "may", "june"}
	Days   = []string{All, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	CityAxis = Axis{
		Name:       "city",
		Vocabulary: Cities,
		Question:   "Please enter the city you're interested in: ",
		Hint:       "Please choose between Chicago, New York City or Washington: ",
	}
	MonthAxis = Axis{
		Name:       "month",
		Vocabulary: Months,
		Question:   "Please enter month you're interested in: ",
		Hint:       `Please enter "all" to get data without month filter or write specific month (January, February, March, April, May or June): `,
	}
	DayAxis = Axis{
		Name:       "day",
		Vocabulary: Days,
		Question:   "Please enter day you're interested in: ",
		Hint:       `Please enter "all" to get data without day filter or write specific day of week (Monday, Tuesday, Wednesday, Thursday, Friday, Saturday or Sunday): `,
	}
)

// Selection the city, month and day chosen by the user. Each value is a member of its axis
// vocabulary.
type Selection struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewSelection returns a Selection with no month and no day filter
func NewSelection(city string) Selection {
	return Selection{
		City:  city,
		Month: All,
		Day:   All,
	}
}

// ParseSelector normalizes input and checks it against the axis vocabulary. The second return
// value is false when the user has to be asked again.
func ParseSelector(axis Axis, input string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(input))
	if !utils.ContainsString(value, axis.Vocabulary) {
		return "", false
	}
	return value, true
}

// MonthNumber returns the number of the month, 1 for january. All returns 0.
func MonthNumber(month string) int {
	idx := utils.IndexOfString(strings.ToLower(month), Months)
	if idx < 0 {
		return 0
	}
	return idx
}

// MonthName returns the title-cased name of the month number, or an empty string if the
// month is out of range
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
