// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gather/internal/delivery/http/response"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler exposes the aggregated session snapshot.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Me returns the session user.
func (h *SessionHandler) Me(c echo.Context) error {
	user, ok := h.uc.CurrentUser()
	if !ok {
		return domainerrors.ErrSessionNotLoaded
	}

	return response.Success(c, http.StatusOK, user, "")
}

// Friends returns the resolved friend list.
func (h *SessionHandler) Friends(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Friends(), "")
}

// Invites returns the pending invite projection.
func (h *SessionHandler) Invites(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Invites(), "")
}

// Availability returns the session user's availability windows.
func (h *SessionHandler) Availability(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Availability(), "")
}

// Activities returns the shared activity catalog.
func (h *SessionHandler) Activities(c echo.Context) error {
	catalog, err := h.uc.ActivityCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalog, "")
}

// User returns one user by id, served through the TTL cache.
func (h *SessionHandler) User(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "User id must be an integer")
	}

	user, err := h.uc.FetchUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// Reload re-runs the initial load for the session user.
func (h *SessionHandler) Reload(c echo.Context) error {
	if err := h.uc.Reload(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session reloaded")
}

// RespondInviteRequest is the payload for answering an invite.
type RespondInviteRequest struct {
	ScheduledActivityID int    `json:"scheduled_activity_id" validate:"required"`
	Status              string `json:"status" validate:"required"`
}

// RespondInvite accepts or declines a pending invite.
func (h *SessionHandler) RespondInvite(c echo.Context) error {
	var input RespondInviteRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite response input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	status, ok := entity.ParseInviteStatus(input.Status)
	if !ok {
		return domainerrors.ErrInvalidInviteStatus
	}

	if err := h.uc.RespondToInvite(c.Request().Context(), input.ScheduledActivityID, status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Invite updated")
}
