package trip

import (
	"strconv"
	"strings"
	"time"

	"tripcraft/models"
	"tripcraft/utils"

	"github.com/google/uuid"
)

const defaultMaxDays = 30

// parseDate accepts YYYY-MM-DD or RFC3339 and returns the calendar day in UTC.
func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, invalid(field, "is required")
	}
	if t, err := time.Parse(utils.DateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return truncateDay(t), nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *DefaultTripService) maxDays() int {
	if s.MaxDays > 0 {
		return s.MaxDays
	}
	return defaultMaxDays
}

func (s *DefaultTripService) validateRange(start, end time.Time) error {
	if end.Before(start) {
		return invalid("endDate", "must not be before startDate")
	}
	if models.DaysBetween(start, end) > s.maxDays() {
		return invalid("endDate", "trip cannot be longer than "+strconv.Itoa(s.maxDays())+" days")
	}
	return nil
}

func (s *DefaultTripService) parseRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := parseDate("startDate", rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate("endDate", rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, s.validateRange(start, end)
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid(field, "is required")
	}
	return value, nil
}

// Stored ids are UUIDs, so anything else cannot name an existing row.
func checkTripID(id string) error {
	if uuid.Validate(id) != nil {
		return ErrTripNotFound
	}
	return nil
}

func checkStopID(id string) error {
	if uuid.Validate(id) != nil {
		return ErrStopNotFound
	}
	return nil
}
