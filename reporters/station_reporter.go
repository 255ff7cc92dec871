package reporters

import (
	"fmt"
	"io"

	"bikeshare/dataset"
	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/trip"
)

// Route a start station and end station combination
type Route struct {
	StartStation string
	EndStation   string
}

// StationReporter shows the most popular stations and trip
type StationReporter struct{}

func NewStationReporter() *StationReporter {
	return &StationReporter{}
}

func (sr *StationReporter) GetType() string {
	return "station-reporter"
}

func (sr *StationReporter) GetBanner() string {
	return "Calculating The Most Popular Stations and Trip..."
}

func (sr *StationReporter) Report(d *dataset.Dataset, out io.Writer) {
	trips := d.GetTrips()

	startStation, _, _ := counter.CountAll(trips, func(t trip.Trip) string { return t.StartStation }).Mode()
	printLine(out, "The most common start station is:", startStation)

	endStation, _, _ := counter.CountAll(trips, func(t trip.Trip) string { return t.EndStation }).Mode()
	printLine(out, "The most common end station is:", endStation)

	routes := counter.CountAll(trips, func(t trip.Trip) Route {
		return Route{StartStation: t.StartStation, EndStation: t.EndStation}
	})
	route, _, _ := routes.Mode()
	count := routes.GetCounter(route)
	printLine(out, "The most frequent combination of start station and end station trip is:",
		fmt.Sprintf("%s -> %s (%v trips)", route.StartStation, route.EndStation, count))

	if km, ok := d.GetStations().Distance(route.StartStation, route.EndStation); ok {
		printLine(out, "Distance between them in km:", km)
	}
}
