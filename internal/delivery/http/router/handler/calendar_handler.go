package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CalendarHandler exposes the derived calendar views.
type CalendarHandler struct {
	uc     usecase.CalendarUsecase
	logger *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler, injected by Fx.
func NewCalendarHandler(uc usecase.CalendarUsecase, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{
		uc:     uc,
		logger: logger,
	}
}

// Agenda returns the planned events inside the requested window.
func (h *CalendarHandler) Agenda(c echo.Context) error {
	from, to, err := parseWindow(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_WINDOW", err.Error())
	}

	return response.Success(c, http.StatusOK, h.uc.Agenda(from, to), "")
}

// Free returns the free-time windows inside the requested window.
func (h *CalendarHandler) Free(c echo.Context) error {
	from, to, err := parseWindow(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_WINDOW", err.Error())
	}

	windows, err := h.uc.FreeWindows(from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, windows, "")
}

// Export renders the schedule as an iCalendar document.
func (h *CalendarHandler) Export(c echo.Context) error {
	document, err := h.uc.ExportICS()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(document))
}

// parseWindow reads the from/to query parameters, accepting a date or an
// RFC 3339 instant. A missing window defaults to the next 7 days.
func parseWindow(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from, to := now, now.AddDate(0, 0, 7)

	var err error
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = parseInstant(raw); err != nil {
			return time.Time{}, time.Time{}, errors.New("the from parameter must be a date or RFC 3339 instant")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = parseInstant(raw); err != nil {
			return time.Time{}, time.Time{}, errors.New("the to parameter must be a date or RFC 3339 instant")
		}
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("the from parameter must precede to")
	}

	return from, to, nil
}

func parseInstant(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, raw)
}
