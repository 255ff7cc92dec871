package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	ConfigFilepath = "./config/config.yaml"

	logLevelEnvVarName = "LOG_LEVEL"
	dataDirEnvVarName  = "DATA_DIR"
)

// columnNames contains the header of each field the explorer reads from a city dataset
type columnNames struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	Duration     string `yaml:"duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// stationColumnNames contains the header of each field of a station directory file
type stationColumnNames struct {
	Name      string `yaml:"name"`
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}

type ExplorerConfig struct {
	DataDir         string             `yaml:"data_dir"`
	CityFiles       map[string]string  `yaml:"city_files"`
	StationsPostfix string             `yaml:"stations_postfix"`
	TimestampLayout string             `yaml:"timestamp_layout"`
	CSVDelimiter    string             `yaml:"csv_delimiter"`
	Columns         columnNames        `yaml:"columns"`
	StationColumns  stationColumnNames `yaml:"station_columns"`
	PageSize        int                `yaml:"page_size"`
	SeparatorWidth  int                `yaml:"separator_width"`
	LogLevel        string             `yaml:"log_level"`
}

// Default returns the configuration used when no config file is present
func Default() *ExplorerConfig {
	return &ExplorerConfig{
		DataDir: ".",
		CityFiles: map[string]string{
			"chicago":       "chicago.csv",
			"new york city": "new_york_city.csv",
			"washington":    "washington.csv",
		},
		StationsPostfix: "_stations",
		TimestampLayout: "2006-01-02 15:04:05",
		CSVDelimiter:    ",",
		Columns: columnNames{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			Duration:     "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		StationColumns: stationColumnNames{
			Name:      "name",
			Latitude:  "latitude",
			Longitude: "longitude",
		},
		PageSize:       5,
		SeparatorWidth: 69,
		LogLevel:       "info",
	}
}

// LoadConfig reads the YAML file at configFilepath on top of Default. A missing file is not an
// error: the defaults are used. LOG_LEVEL and DATA_DIR override the file values.
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	explorerConfig := Default()

	configFile, err := utils.GetConfigFile(configFilepath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debugf("[config: %s] file not found, using defaults", configFilepath)
	case err != nil:
		return nil, err
	default:
		err = yaml.Unmarshal(configFile, explorerConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing explorer config file: %w", err)
		}
	}

	if logLevel := os.Getenv(logLevelEnvVarName); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}

	if utf8.RuneCountInString(explorerConfig.CSVDelimiter) != 1 {
		return nil, fmt.Errorf("invalid csv delimiter %q: must be a single character", explorerConfig.CSVDelimiter)
	}

	if explorerConfig.PageSize <= 0 {
		return nil, fmt.Errorf("invalid page size %v: must be greater than zero", explorerConfig.PageSize)
	}

	return explorerConfig, nil
}
