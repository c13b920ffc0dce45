package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gather/internal/delivery/http/response"
	"gather/internal/domain/entity"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScheduleHandler exposes the scheduled activity list and its mutations.
type ScheduleHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.SessionUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the time-ordered schedule.
func (h *ScheduleHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ScheduledActivities(), "")
}

// Participants returns the participation records of one scheduled activity.
func (h *ScheduleHandler) Participants(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SCHEDULE_ID", "Scheduled activity id must be an integer")
	}

	return response.Success(c, http.StatusOK, h.uc.ActivityParticipants(id), "")
}

// LocationRequest describes the place a new activity happens at.
type LocationRequest struct {
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActivityRequest describes the activity template.
type ActivityRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
	Emoji         string `json:"emoji"`
}

// RepeatRequest describes an optional recurrence rule.
type RepeatRequest struct {
	Frequency int    `json:"frequency" validate:"required,min=1"`
	Period    string `json:"period" validate:"required,oneof=day week month"`
	Days      []int  `json:"days" validate:"dive,min=0,max=6"`
}

// CreateScheduleRequest is the payload for putting a new activity on the
// calendar.
type CreateScheduleRequest struct {
	Location       LocationRequest `json:"location" validate:"required"`
	Activity       ActivityRequest `json:"activity" validate:"required"`
	Dates          []string        `json:"dates" validate:"required,min=1"`
	StartTime      time.Time       `json:"start_time" validate:"required"`
	EndTime        time.Time       `json:"end_time" validate:"required"`
	TimeZone       string          `json:"time_zone"`
	ParticipantIDs []int           `json:"participant_ids"`
	Repeat         *RepeatRequest  `json:"repeat"`
}

// Create schedules a new activity, creating location/activity records as
// needed and inviting the listed participants.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var input CreateScheduleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tz := time.Local
	if input.TimeZone != "" {
		loaded, err := time.LoadLocation(input.TimeZone)
		if err != nil {
			return response.BadRequest(c, "INVALID_TIME_ZONE", "Unknown time zone")
		}
		tz = loaded
	}

	dates := make([]time.Time, 0, len(input.Dates))
	for _, raw := range input.Dates {
		date, err := time.ParseInLocation("2006-01-02", raw, tz)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Dates must use the YYYY-MM-DD form")
		}
		dates = append(dates, date)
	}

	participants := make([]entity.User, 0, len(input.ParticipantIDs))
	for _, id := range input.ParticipantIDs {
		participants = append(participants, entity.User{ID: id})
	}

	ucInput := usecase.ScheduleActivityInput{
		Location: entity.Location{
			Name:      input.Location.Name,
			Address:   input.Location.Address,
			City:      input.Location.City,
			State:     input.Location.State,
			ZipCode:   input.Location.ZipCode,
			Country:   input.Location.Country,
			Latitude:  input.Location.Latitude,
			Longitude: input.Location.Longitude,
		},
		Activity: entity.Activity{
			Name:          input.Activity.Name,
			Description:   input.Activity.Description,
			EstimatedTime: input.Activity.EstimatedTime,
			Emoji:         input.Activity.Emoji,
		},
		Dates:        dates,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		TimeZone:     tz,
		Participants: participants,
	}
	if input.Repeat != nil {
		ucInput.Repeat = &usecase.RepeatInput{
			Frequency: input.Repeat.Frequency,
			Period:    input.Repeat.Period,
			Days:      input.Repeat.Days,
		}
	}

	created, err := h.uc.SaveNewScheduledActivity(c.Request().Context(), ucInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Activity scheduled")
}

// RescheduleRequest is the payload for moving one occurrence.
type RescheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

// Reschedule moves one occurrence to a new time.
func (h *ScheduleHandler) Reschedule(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SCHEDULE_ID", "Scheduled activity id must be an integer")
	}

	var input RescheduleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reschedule input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.RescheduleScheduledActivity(c.Request().Context(), id, input.ScheduledAt)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Activity rescheduled")
}

// Cancel deletes one occurrence.
func (h *ScheduleHandler) Cancel(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SCHEDULE_ID", "Scheduled activity id must be an integer")
	}

	if err := h.uc.CancelScheduledActivity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity cancelled")
}
