package entity

import (
	"strconv"
	"strings"
)

// UserActivityPreference is a recurrence rule used to request server-side
// generation of repeated scheduled activity instances.
type UserActivityPreference struct {
	ID              int
	UserID          int
	ActivityID      int
	Frequency       int
	FrequencyPeriod string // "day", "week" or "month".
	DaysOfWeek      string // Comma-joined weekday numbers, e.g. "1,3,5".
}

// DayNumbers parses the comma-joined DaysOfWeek field. Unparseable segments
// are skipped.
func (p UserActivityPreference) DayNumbers() []int {
	if p.DaysOfWeek == "" {
		return nil
	}
	parts := strings.Split(p.DaysOfWeek, ",")
	days := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, n)
	}

	return days
}

// JoinDayNumbers renders weekday numbers into the wire form of DaysOfWeek.
func JoinDayNumbers(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d))
	}

	return strings.Join(parts, ",")
}

// UserActivityPreferenceParticipant links an invited user to a preference so
// generated instances carry the same participant set.
type UserActivityPreferenceParticipant struct {
	ID                       int
	UserActivityPreferenceID int
	UserID                   int
}
