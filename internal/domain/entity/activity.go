package entity

import (
	"fmt"
	"time"
)

// Activity is a template for something to do, either user-authored or from
// the shared catalog.
type Activity struct {
	ID            int
	Name          string
	Description   string
	EstimatedTime string // Free-text duration in H:MM:SS form.
	LocationID    *int
	UserCreated   bool
	Emoji         string
}

// SameActivity reports whether two activities describe the same template.
// Name+description is the working key, matching the reuse check on save.
func (a Activity) SameActivity(other Activity) bool {
	return a.Name == other.Name && a.Description == other.Description
}

// EstimatedDuration parses the free-text H:MM:SS estimate. The second return
// value is false when the field is empty or malformed.
func (a Activity) EstimatedDuration() (time.Duration, bool) {
	var h, m, s int
	if _, err := fmt.Sscanf(a.EstimatedTime, "%d:%d:%d", &h, &m, &s); err != nil {
		return 0, false
	}
	if h < 0 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, false
	}

	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, true
}
