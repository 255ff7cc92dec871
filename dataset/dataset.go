package dataset

import (
	"strconv"
	"strings"

	"bikeshare/domain/entities"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	"bikeshare/filters"

	"github.com/go-gota/gota/dataframe"
)

// Dataset the trips of a city that match the active filters. A Dataset is never modified once
// built: Filter returns a new one.
type Dataset struct {
	schema   entities.Schema
	frame    dataframe.DataFrame
	trips    []trip.Trip
	rows     []int
	stations station.Directory
}

// New returns an unfiltered Dataset. trips[i] must be the parsed form of row i of frame.
func New(schema entities.Schema, frame dataframe.DataFrame, trips []trip.Trip, stations station.Directory) *Dataset {
	rows := make([]int, len(trips))
	for idx := range rows {
		rows[idx] = idx
	}

	if stations == nil {
		stations = station.Directory{}
	}

	return &Dataset{
		schema:   schema,
		frame:    frame,
		trips:    trips,
		rows:     rows,
		stations: stations,
	}
}

func (d *Dataset) GetSchema() entities.Schema {
	return d.schema
}

func (d *Dataset) GetTrips() []trip.Trip {
	return d.trips
}

func (d *Dataset) GetStations() station.Directory {
	return d.stations
}

func (d *Dataset) Len() int {
	return len(d.trips)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.trips) == 0
}

// Filter returns the trips that start in month and on day. filters.All disables the
// corresponding filter. Filtering an already filtered Dataset with the same values returns
// the same trips.
func (d *Dataset) Filter(month string, day string) *Dataset {
	monthNumber := filters.MonthNumber(month)
	filterDay := !strings.EqualFold(day, filters.All)

	var trips []trip.Trip
	var rows []int
	for idx := range d.trips {
		tripData := d.trips[idx]
		if monthNumber != 0 && tripData.Month != monthNumber {
			continue
		}
		if filterDay && !strings.EqualFold(tripData.DayOfWeek, day) {
			continue
		}
		trips = append(trips, tripData)
		rows = append(rows, d.rows[idx])
	}

	return &Dataset{
		schema:   d.schema,
		frame:    d.frame,
		trips:    trips,
		rows:     rows,
		stations: d.stations,
	}
}

// DerivedColumns are the columns computed from the start time of each trip
var DerivedColumns = []string{"month", "day_of_week", "hour"}

// Head returns the header of the source file followed by the raw values of the first n trips.
// Each record ends with the DerivedColumns of the trip. n is clamped to the length of the
// Dataset.
func (d *Dataset) Head(n int) [][]string {
	if n > len(d.rows) {
		n = len(d.rows)
	}

	header := append(append([]string{}, d.frame.Names()...), DerivedColumns...)
	if n <= 0 {
		return [][]string{header}
	}

	raw := d.frame.Subset(d.rows[:n]).Records()
	records := make([][]string, 0, n+1)
	records = append(records, header)
	for idx, record := range raw[1:] {
		tripData := d.trips[idx]
		records = append(records, append(record,
			strconv.Itoa(tripData.Month),
			tripData.DayOfWeek,
			strconv.Itoa(tripData.Hour()),
		))
	}
	return records
}
