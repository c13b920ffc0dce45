// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gather/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	ScheduleHandler *handler.ScheduleHandler
	CalendarHandler *handler.CalendarHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	scheduleHandler *handler.ScheduleHandler
	calendarHandler *handler.CalendarHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		scheduleHandler: params.ScheduleHandler,
		calendarHandler: params.CalendarHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/me", r.sessionHandler.Me)
		api.GET("/friends", r.sessionHandler.Friends)
		api.GET("/invites", r.sessionHandler.Invites)
		api.GET("/availability", r.sessionHandler.Availability)
		api.GET("/activities", r.sessionHandler.Activities)
		api.GET("/users/:id", r.sessionHandler.User)
		api.POST("/session/reload", r.sessionHandler.Reload)
		api.POST("/invites/respond", r.sessionHandler.RespondInvite)

		api.GET("/schedule", r.scheduleHandler.List)
		api.GET("/schedule/:id/participants", r.scheduleHandler.Participants)
		api.POST("/schedule", r.scheduleHandler.Create)
		api.PUT("/schedule/:id/reschedule", r.scheduleHandler.Reschedule)
		api.DELETE("/schedule/:id", r.scheduleHandler.Cancel)

		api.GET("/calendar/agenda", r.calendarHandler.Agenda)
		api.GET("/calendar/free", r.calendarHandler.Free)
		api.GET("/calendar/export.ics", r.calendarHandler.Export)
	}
}
