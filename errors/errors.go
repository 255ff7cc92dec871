package errors

import "errors"

var (
	ErrUnknownCity        = errors.New("unknown city")
	ErrMissingColumn      = errors.New("missing column")
	ErrInvalidTripData    = errors.New("invalid trip data")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrInvalidDuration    = errors.New("invalid duration type")
	ErrInvalidBirthYear   = errors.New("invalid birth year type")
	ErrInvalidStationData = errors.New("invalid station data")
)
