package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (sd StationData) GetCoordinates() haversine.Coord {
	return haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
}

// Directory maps station names to their location
type Directory map[string]StationData

func (d Directory) Add(stationData StationData) {
	d[stationData.Name] = stationData
}

// Distance returns the distance in kilometers between two stations. The second return value
// is false if any of them is unknown
func (d Directory) Distance(startStation string, endStation string) (float64, bool) {
	start, ok := d[startStation]
	if !ok {
		return 0, false
	}

	end, ok := d[endStation]
	if !ok {
		return 0, false
	}

	_, km := haversine.Distance(start.GetCoordinates(), end.GetCoordinates())
	return km, true
}
