package birthyear

import (
	"bikeshare/domain/business/counter"

	"gonum.org/v1/gonum/floats"
)

// Summary earliest, most recent and most common birth year of a set of users
type Summary struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// Summarize returns the Summary of the given birth years. Nil values are skipped; the second
// return value is false when no birth year is known.
func Summarize(birthYears []*int) (Summary, bool) {
	var years []float64
	yearCounter := counter.NewCounter[int]()
	for _, birthYear := range birthYears {
		if birthYear == nil {
			continue
		}
		years = append(years, float64(*birthYear))
		yearCounter.UpdateCounter(*birthYear)
	}

	mostCommon, _, ok := yearCounter.Mode()
	if !ok {
		return Summary{}, false
	}

	return Summary{
		Earliest:   int(floats.Min(years)),
		MostRecent: int(floats.Max(years)),
		MostCommon: mostCommon,
	}, true
}
