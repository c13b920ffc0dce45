package entity

import (
	"sort"
	"time"
)

// ScheduledActivity is one concrete calendar occurrence of an Activity.
// ScheduledAt is the only field a reschedule may change.
type ScheduledActivity struct {
	ID          int
	ActivityID  int
	ScheduledAt time.Time
	IsActive    bool
}

// SortSchedule orders scheduled activities ascending by their scheduled time.
// The snapshot keeps this ordering after every local mutation.
func SortSchedule(list []ScheduledActivity) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ScheduledAt.Before(list[j].ScheduledAt)
	})
}
