package entity

import (
	"strings"
	"time"
)

// UserAvailability is a window of free (or explicitly busy) time, either
// recurring on a weekday or pinned to a specific date.
type UserAvailability struct {
	ID           int
	UserID       int
	DayOfWeek    string // Weekday name for recurring rows; may be empty when SpecificDate is set.
	StartTime    time.Time
	EndTime      time.Time
	IsAvailable  bool
	SpecificDate *time.Time
}

// Weekday maps the day-of-week string onto time.Weekday. The second return
// value is false when the row has no recognizable weekday.
func (a UserAvailability) Weekday() (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(a.DayOfWeek)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}
