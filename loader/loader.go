package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/errors"
	"bikeshare/filters"
	"bikeshare/utils"

	"github.com/go-gota/gota/dataframe"
	log "github.com/sirupsen/logrus"
)

const (
	loaderType = "loader"
	csvExt     = ".csv"
)

type Loader struct {
	config *config.ExplorerConfig
}

func NewLoader(explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		config: explorerConfig,
	}
}

func (l *Loader) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][city: %s][method: %s][status: OK] %s", loaderType, city, method, message)
}

// GetFilePath returns the path to the .csv file of the city
func (l *Loader) GetFilePath(city string) (string, error) {
	filename, ok := l.config.CityFiles[city]
	if !ok {
		return "", fmt.Errorf("%s: %w", city, dataErrors.ErrUnknownCity)
	}
	return filepath.Join(l.config.DataDir, filename), nil
}

// getStationsFilePath returns the path to the optional station directory of the city, e.g.
// chicago_stations.csv next to chicago.csv
func (l *Loader) getStationsFilePath(tripsFilepath string) string {
	stem := strings.TrimSuffix(tripsFilepath, filepath.Ext(tripsFilepath))
	return stem + l.config.StationsPostfix + csvExt
}

// Load reads every trip of the selected city and keeps the ones that match the selected month
// and day. Any unreadable file or unparsable value aborts the load.
func (l *Loader) Load(selection filters.Selection) (*dataset.Dataset, error) {
	tripsFilepath, err := l.GetFilePath(selection.City)
	if err != nil {
		return nil, err
	}

	frame, err := l.readCSV(tripsFilepath)
	if err != nil {
		log.Error(l.getLogMessage(selection.City, "Load", "error reading trips file", err))
		return nil, err
	}

	schema, err := l.getSchema(selection.City, frame)
	if err != nil {
		return nil, err
	}

	trips, err := l.getTrips(schema, frame)
	if err != nil {
		log.Error(l.getLogMessage(selection.City, "Load", "error parsing trips", err))
		return nil, err
	}

	stations, err := l.loadStations(l.getStationsFilePath(tripsFilepath))
	if err != nil {
		log.Error(l.getLogMessage(selection.City, "Load", "error parsing stations", err))
		return nil, err
	}

	filtered := dataset.New(schema, frame, trips, stations).Filter(selection.Month, selection.Day)
	log.Info(l.getLogMessage(selection.City, "Load", fmt.Sprintf("%v of %v trips match month %s and day %s", filtered.Len(), len(trips), selection.Month, selection.Day), nil))

	return filtered, nil
}

func (l *Loader) readCSV(path string) (dataframe.DataFrame, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", path, err.Error())
		}
	}(dataFile)

	delimiter, _ := utf8.DecodeRuneInString(l.config.CSVDelimiter)
	frame := dataframe.ReadCSV(
		dataFile,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithDelimiter(delimiter),
	)
	if frame.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error parsing %s: %w", path, frame.Err)
	}

	return frame, nil
}

// getSchema checks that every required column is present
func (l *Loader) getSchema(city string, frame dataframe.DataFrame) (entities.Schema, error) {
	columns := frame.Names()
	required := []string{
		l.config.Columns.StartTime,
		l.config.Columns.EndTime,
		l.config.Columns.Duration,
		l.config.Columns.StartStation,
		l.config.Columns.EndStation,
		l.config.Columns.UserType,
	}

	for _, column := range required {
		if !utils.ContainsString(column, columns) {
			return entities.Schema{}, fmt.Errorf("%s in %s data: %w", column, city, dataErrors.ErrMissingColumn)
		}
	}

	schema := entities.NewSchema(city, columns, l.config.Columns.Gender, l.config.Columns.BirthYear)
	log.Debug(l.getLogMessage(city, "getSchema", fmt.Sprintf("columns: %v, gender: %v, birth year: %v", columns, schema.HasGender(), schema.HasBirthYear()), nil))
	return schema, nil
}

func (l *Loader) getTrips(schema entities.Schema, frame dataframe.DataFrame) ([]trip.Trip, error) {
	columns := l.config.Columns
	startTimes := frame.Col(columns.StartTime).Records()
	endTimes := frame.Col(columns.EndTime).Records()
	durations := frame.Col(columns.Duration).Records()
	startStations := frame.Col(columns.StartStation).Records()
	endStations := frame.Col(columns.EndStation).Records()
	userTypes := frame.Col(columns.UserType).Records()

	var genders, birthYears []string
	if schema.HasGender() {
		genders = frame.Col(columns.Gender).Records()
	}
	if schema.HasBirthYear() {
		birthYears = frame.Col(columns.BirthYear).Records()
	}

	trips := make([]trip.Trip, 0, frame.Nrow())
	for idx := 0; idx < frame.Nrow(); idx++ {
		startTime, err := l.parseTimestamp(startTimes[idx])
		if err != nil {
			return nil, invalidRow(idx, err)
		}

		endTime, err := l.parseTimestamp(endTimes[idx])
		if err != nil {
			return nil, invalidRow(idx, err)
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(durations[idx]), 64)
		if err != nil {
			return nil, invalidRow(idx, fmt.Errorf("%s: %w", durations[idx], dataErrors.ErrInvalidDuration))
		}

		tripData := trip.NewTrip(startTime, endTime, startStations[idx], endStations[idx], duration, nullToEmpty(userTypes[idx]))

		if genders != nil {
			tripData.Gender = nullToEmpty(genders[idx])
		}

		if birthYears != nil {
			birthYear, err := parseBirthYear(birthYears[idx])
			if err != nil {
				return nil, invalidRow(idx, err)
			}
			tripData.BirthYear = birthYear
		}

		trips = append(trips, *tripData)
	}

	return trips, nil
}

// invalidRow marks err as a failure to parse row idx of a trips file
func invalidRow(idx int, err error) error {
	return fmt.Errorf("row %v: %w: %w", idx, dataErrors.ErrInvalidTripData, err)
}

func (l *Loader) parseTimestamp(value string) (time.Time, error) {
	timestamp, err := time.Parse(l.config.TimestampLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", value, dataErrors.ErrInvalidTimestamp)
	}
	return timestamp, nil
}

// parseBirthYear returns nil for a missing birth year. Values such as 1989.0 are truncated.
func parseBirthYear(value string) (*int, error) {
	if utils.IsNullValue(value) {
		return nil, nil
	}

	birthYearFloat, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", value, dataErrors.ErrInvalidBirthYear)
	}

	birthYear := int(birthYearFloat)
	return &birthYear, nil
}

func nullToEmpty(value string) string {
	if utils.IsNullValue(value) {
		return ""
	}
	return value
}

// loadStations reads the station directory of a city. The directory is optional: a missing
// file returns an empty one.
func (l *Loader) loadStations(path string) (station.Directory, error) {
	directory := station.Directory{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Debugf("[component: %s][method: loadStations] no station directory at %s", loaderType, path)
		return directory, nil
	}

	frame, err := l.readCSV(path)
	if err != nil {
		return nil, err
	}

	columns := l.config.StationColumns
	for _, column := range []string{columns.Name, columns.Latitude, columns.Longitude} {
		if !utils.ContainsString(column, frame.Names()) {
			return nil, fmt.Errorf("%s in %s: %w", column, path, dataErrors.ErrMissingColumn)
		}
	}

	names := frame.Col(columns.Name).Records()
	latitudes := frame.Col(columns.Latitude).Records()
	longitudes := frame.Col(columns.Longitude).Records()

	for idx := range names {
		latitude, err := strconv.ParseFloat(strings.TrimSpace(latitudes[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %v: invalid latitude %s: %w", idx, latitudes[idx], dataErrors.ErrInvalidStationData)
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(longitudes[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %v: invalid longitude %s: %w", idx, longitudes[idx], dataErrors.ErrInvalidStationData)
		}

		directory.Add(station.StationData{Name: names[idx], Latitude: latitude, Longitude: longitude})
	}

	log.Debugf("[component: %s][method: loadStations] %v stations loaded from %s", loaderType, len(directory), path)
	return directory, nil
}
