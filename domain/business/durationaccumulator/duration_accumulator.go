package durationaccumulator

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const secondsPerHour = 3600.0

var ErrEmptyAccumulator = errors.New("duration accumulator is empty")

// DurationAccumulator struct that collects trip durations, in seconds.
// + Durations: every duration collected
type DurationAccumulator struct {
	Durations []float64 `json:"durations"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Durations = append(da.Durations, duration)
}

func (da *DurationAccumulator) GetCounter() int {
	return len(da.Durations)
}

// GetTotalHours returns the sum of all durations expressed in hours
func (da *DurationAccumulator) GetTotalHours() (float64, error) {
	if len(da.Durations) == 0 {
		return 0, ErrEmptyAccumulator
	}
	return floats.Sum(da.Durations) / secondsPerHour, nil
}

// GetMeanHours returns the arithmetic mean of all durations expressed in hours
func (da *DurationAccumulator) GetMeanHours() (float64, error) {
	if len(da.Durations) == 0 {
		return 0, ErrEmptyAccumulator
	}
	return stat.Mean(da.Durations, nil) / secondsPerHour, nil
}
