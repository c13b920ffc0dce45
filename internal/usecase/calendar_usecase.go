package usecase

import "time"

// CalendarUsecase derives calendar views from the loaded snapshot: planned
// events filtered by date, free-time windows expanded from availability
// rules, and an iCalendar export. All methods are pure over local state and
// perform no network I/O.
type CalendarUsecase interface {
	// Agenda returns the scheduled activities falling inside [from, to),
	// joined with their activity and location.
	Agenda(from, to time.Time) []AgendaEntry

	// FreeWindows expands the user's availability rules into concrete dated
	// windows inside [from, to). Rows flagged unavailable are skipped.
	FreeWindows(from, to time.Time) ([]FreeWindow, error)

	// ExportICS renders the visible schedule as an iCalendar document.
	ExportICS() (string, error)
}
