package trip

import "time"

// Trip struct that contains one row of a city dataset
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: kind of user, e.g. Subscriber or Customer
// + Gender: gender of the user, empty if unknown or not tracked by the city
// + BirthYear: birth year of the user, nil if unknown or not tracked by the city
// + Month: month of StartTime, 1 to 12
// + DayOfWeek: weekday name of StartTime, e.g. Monday
type Trip struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender"`
	BirthYear    *int      `json:"birth_year"`
	Month        int       `json:"month"`
	DayOfWeek    string    `json:"day_of_week"`
}

// NewTrip builds a Trip and derives Month and DayOfWeek from startTime
func NewTrip(startTime time.Time, endTime time.Time, startStation string, endStation string, duration float64, userType string) *Trip {
	return &Trip{
		StartTime:    startTime,
		EndTime:      endTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        int(startTime.Month()),
		DayOfWeek:    startTime.Weekday().String(),
	}
}

// Hour returns the hour of day in which the trip begins
func (t Trip) Hour() int {
	return t.StartTime.Hour()
}

func (t Trip) HasBirthYear() bool {
	return t.BirthYear != nil
}
