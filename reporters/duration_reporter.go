package reporters

import (
	"fmt"
	"io"
	"strconv"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
)

// DurationReporter shows the total and average trip duration
type DurationReporter struct{}

func NewDurationReporter() *DurationReporter {
	return &DurationReporter{}
}

func (dr *DurationReporter) GetType() string {
	return "duration-reporter"
}

func (dr *DurationReporter) GetBanner() string {
	return "Calculating Trip Duration..."
}

func (dr *DurationReporter) Report(d *dataset.Dataset, out io.Writer) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range d.GetTrips() {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	if accumulator.GetCounter() == 0 {
		_, _ = fmt.Fprintln(out, warningStyle.Render(noDataMessage))
		return
	}

	totalHours, _ := accumulator.GetTotalHours()
	printLine(out, "Total travel time in hours is:", formatHours(totalHours))

	meanHours, _ := accumulator.GetMeanHours()
	printLine(out, "Mean travel time in hours is:", formatHours(meanHours))
}

// formatHours prints every significant digit without switching to exponent notation
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
