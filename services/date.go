package services

import (
	"fmt"
	"math"
	"time"
)

// ParseDateTime parses an ISO-8601 datetime, with or without zone offset.
func ParseDateTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q: expected ISO-8601", value)
}

// DaysUntil returns the whole number of days from now until target, floored,
// so a hearing 12 hours away counts as 0 days and one 12 hours overdue
// counts as -1.
func DaysUntil(target, now time.Time) int {
	return int(math.Floor(target.Sub(now).Hours() / 24))
}
