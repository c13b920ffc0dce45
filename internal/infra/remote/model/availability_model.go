package model

import "gather/internal/domain/entity"

// AvailabilityModel is the wire shape of an availability window.
type AvailabilityModel struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	DayOfWeek    string    `json:"day_of_week"`
	StartTime    TimeOfDay `json:"start_time"`
	EndTime      TimeOfDay `json:"end_time"`
	IsAvailable  bool      `json:"is_available"`
	SpecificDate *APITime  `json:"specific_date"`
}

func ToAvailabilityDomains(models []AvailabilityModel) []entity.UserAvailability {
	windows := make([]entity.UserAvailability, 0, len(models))
	for _, m := range models {
		w := entity.UserAvailability{
			ID:          m.ID,
			UserID:      m.UserID,
			DayOfWeek:   m.DayOfWeek,
			StartTime:   m.StartTime.Time(),
			EndTime:     m.EndTime.Time(),
			IsAvailable: m.IsAvailable,
		}
		if m.SpecificDate != nil {
			t := m.SpecificDate.Time()
			w.SpecificDate = &t
		}
		windows = append(windows, w)
	}

	return windows
}
