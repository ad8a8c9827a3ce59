package api

import (
	"errors"
	"time"
)

const dayQueryLayout = "2006-01-02"

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation(dayQueryLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// parseRangeQuery validates the start/end pair; absent bounds are a caller
// input error, never guessed at.
func parseRangeQuery(rawStart string, rawEnd string, location *time.Location) (time.Time, time.Time, error) {
	if rawStart == "" || rawEnd == "" {
		return time.Time{}, time.Time{}, errors.New("start and end are required")
	}

	start, err := time.ParseInLocation(dayQueryLayout, rawStart, location)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date")
	}
	end, err := time.ParseInLocation(dayQueryLayout, rawEnd, location)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end must not be before start")
	}

	return start, end, nil
}

func parseOptionalDateTime(raw string, location *time.Location) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.ParseInLocation(time.RFC3339, raw, location); err == nil {
		return &parsed, nil
	}
	parsed, err := time.ParseInLocation(dayQueryLayout, raw, location)
	if err != nil {
		return nil, errors.New("invalid date")
	}
	return &parsed, nil
}
