package reporters

import (
	"fmt"
	"io"

	"bikeshare/dataset"
	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/trip"
	"bikeshare/filters"
)

const timeSeparatorWidth = 40

// TimeReporter shows the most frequent times of travel
type TimeReporter struct{}

func NewTimeReporter() *TimeReporter {
	return &TimeReporter{}
}

func (tr *TimeReporter) GetType() string {
	return "time-reporter"
}

func (tr *TimeReporter) GetBanner() string {
	return "Calculating The Most Frequent Times of Travel..."
}

func (tr *TimeReporter) GetSeparatorWidth() int {
	return timeSeparatorWidth
}

func (tr *TimeReporter) Report(d *dataset.Dataset, out io.Writer) {
	trips := d.GetTrips()

	month, _, _ := counter.CountAll(trips, func(t trip.Trip) int { return t.Month }).Mode()
	printLine(out, "The most common month is:", fmt.Sprintf("%s (%v)", filters.MonthName(month), month))

	day, _, _ := counter.CountAll(trips, func(t trip.Trip) string { return t.DayOfWeek }).Mode()
	printLine(out, "The most common day is:", day)

	hour, _, _ := counter.CountAll(trips, func(t trip.Trip) int { return t.Hour() }).Mode()
	printLine(out, "The most common hour is:", hour)
}
