package reporters

import (
	"fmt"
	"io"

	"bikeshare/dataset"
	"bikeshare/domain/business/birthyear"
	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/trip"
)

// UserReporter shows user types and, when the city tracks them, gender and birth year
// statistics
type UserReporter struct{}

func NewUserReporter() *UserReporter {
	return &UserReporter{}
}

func (ur *UserReporter) GetType() string {
	return "user-reporter"
}

func (ur *UserReporter) GetBanner() string {
	return "Calculating User Stats..."
}

func (ur *UserReporter) Report(d *dataset.Dataset, out io.Writer) {
	trips := d.GetTrips()
	schema := d.GetSchema()

	printBreakdown(out, "User Type", countNonEmpty(trips, func(t trip.Trip) string { return t.UserType }))

	if schema.HasGender() {
		printBreakdown(out, "Gender", countNonEmpty(trips, func(t trip.Trip) string { return t.Gender }))
	}

	if schema.HasBirthYear() {
		var birthYears []*int
		for idx := range trips {
			if trips[idx].HasBirthYear() {
				birthYears = append(birthYears, trips[idx].BirthYear)
			}
		}

		summary, ok := birthyear.Summarize(birthYears)
		if !ok {
			_, _ = fmt.Fprintln(out, warningStyle.Render("No birth year data available."))
			return
		}
		printLine(out, "The earliest year of birth is:", summary.Earliest)
		printLine(out, "The most recent year of birth is:", summary.MostRecent)
		printLine(out, "The most common year of birth is:", summary.MostCommon)
	}
}

// countNonEmpty counts the values returned by key, skipping missing ones
func countNonEmpty(trips []trip.Trip, key func(trip.Trip) string) *counter.Counter[string] {
	c := counter.NewCounter[string]()
	for idx := range trips {
		if value := key(trips[idx]); value != "" {
			c.UpdateCounter(value)
		}
	}
	return c
}

func printBreakdown(out io.Writer, name string, c *counter.Counter[string]) {
	_, _ = fmt.Fprintln(out, labelStyle.Render(name))
	if c.Len() == 0 {
		_, _ = fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("No %s data available.", name)))
		return
	}
	for _, count := range c.Breakdown() {
		_, _ = fmt.Fprintf(out, "%-12s %v\n", count.Value, count.Counter)
	}
}
