package impl

import (
	"fmt"
	"sort"
	"time"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/usecase"

	ics "github.com/arran4/golang-ical"
	"github.com/pkg/errors"
	"github.com/teambition/rrule-go"
)

// defaultEventDuration is assumed when an activity carries no usable
// time estimate.
const defaultEventDuration = time.Hour

// calendarService derives calendar views from the session snapshot. It never
// talks to the network; everything is computed from already-loaded state.
type calendarService struct {
	session usecase.SessionUsecase
}

// NewCalendarService is the constructor for calendarService.
func NewCalendarService(session usecase.SessionUsecase) usecase.CalendarUsecase {
	return &calendarService{session: session}
}

// Agenda returns the scheduled activities falling inside [from, to), joined
// with their activity and location. The schedule is already time-ordered, so
// the result is as well.
func (srv *calendarService) Agenda(from, to time.Time) []usecase.AgendaEntry {
	var entries []usecase.AgendaEntry
	for _, sa := range srv.session.ScheduledActivities() {
		if sa.ScheduledAt.Before(from) || !sa.ScheduledAt.Before(to) {
			continue
		}

		activity, ok := srv.session.ActivityByID(sa.ActivityID)
		if !ok {
			continue
		}

		var location *entity.Location
		if activity.LocationID != nil {
			if loc, ok := srv.session.LocationByID(*activity.LocationID); ok {
				location = &loc
			}
		}

		entries = append(entries, usecase.AgendaEntry{
			ScheduledActivity: sa,
			Activity:          activity,
			Location:          location,
			Participants:      srv.session.ActivityParticipants(sa.ID),
		})
	}

	return entries
}

// FreeWindows expands the user's availability rules into concrete dated
// windows inside [from, to). Weekday rows expand via a weekly recurrence
// rule; rows pinned to a specific date contribute at most one window. Rows
// flagged unavailable are skipped.
func (srv *calendarService) FreeWindows(from, to time.Time) ([]usecase.FreeWindow, error) {
	if _, ok := srv.session.CurrentUser(); !ok {
		return nil, domainerrors.ErrSessionNotLoaded
	}
	if !from.Before(to) {
		return nil, errors.New("the window start must precede its end")
	}

	var windows []usecase.FreeWindow
	for _, rule := range srv.session.Availability() {
		if !rule.IsAvailable {
			continue
		}

		if rule.SpecificDate != nil {
			window, ok := windowOnDate(*rule.SpecificDate, rule, from, to)
			if ok {
				windows = append(windows, window)
			}

			continue
		}

		weekday, ok := rule.Weekday()
		if !ok {
			continue
		}

		recurrence, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   from,
			Byweekday: []rrule.Weekday{rruleWeekday(weekday)},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "expand availability rule %d", rule.ID)
		}

		for _, occurrence := range recurrence.Between(from.Add(-24*time.Hour), to, true) {
			window, ok := windowOnDate(occurrence, rule, from, to)
			if ok {
				windows = append(windows, window)
			}
		}
	}

	sortWindows(windows)

	return windows, nil
}

// windowOnDate anchors the rule's time of day onto a concrete date and clips
// it to [from, to).
func windowOnDate(date time.Time, rule entity.UserAvailability, from, to time.Time) (usecase.FreeWindow, bool) {
	start := time.Date(date.Year(), date.Month(), date.Day(),
		rule.StartTime.Hour(), rule.StartTime.Minute(), rule.StartTime.Second(), 0, from.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(),
		rule.EndTime.Hour(), rule.EndTime.Minute(), rule.EndTime.Second(), 0, from.Location())
	if !start.Before(end) {
		return usecase.FreeWindow{}, false
	}

	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !start.Before(end) {
		return usecase.FreeWindow{}, false
	}

	return usecase.FreeWindow{Start: start, End: end}, true
}

func rruleWeekday(day time.Weekday) rrule.Weekday {
	switch day {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}

func sortWindows(windows []usecase.FreeWindow) {
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})
}

// ExportICS renders the visible schedule as an iCalendar document. Event
// length comes from the activity's time estimate when it parses, otherwise a
// one hour default.
func (srv *calendarService) ExportICS() (string, error) {
	user, ok := srv.session.CurrentUser()
	if !ok {
		return "", domainerrors.ErrSessionNotLoaded
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//gather//session calendar//EN")

	for _, sa := range srv.session.ScheduledActivities() {
		activity, ok := srv.session.ActivityByID(sa.ActivityID)
		if !ok {
			continue
		}

		duration := defaultEventDuration
		if estimated, ok := activity.EstimatedDuration(); ok && estimated > 0 {
			duration = estimated
		}

		event := cal.AddEvent(fmt.Sprintf("scheduled-activity-%d@gather", sa.ID))
		event.SetStartAt(sa.ScheduledAt)
		event.SetEndAt(sa.ScheduledAt.Add(duration))
		event.SetSummary(activity.Name)
		if activity.Description != "" {
			event.SetDescription(activity.Description)
		}
		event.SetOrganizer(user.Email, ics.WithCN(user.Name))
		if activity.LocationID != nil {
			if loc, ok := srv.session.LocationByID(*activity.LocationID); ok {
				event.SetLocation(fmt.Sprintf("%s, %s", loc.Name, loc.Address))
			}
		}
	}

	return cal.Serialize(), nil
}
