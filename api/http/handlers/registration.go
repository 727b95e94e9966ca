package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campushub/clubevents/api/http/presenter"
	"github.com/campushub/clubevents/pkg/directory"
	"github.com/campushub/clubevents/pkg/ledger"
)

type RegistrationHandler struct {
	ledger ledger.UseCase
}

func NewRegistrationHandler(l ledger.UseCase) *RegistrationHandler {
	return &RegistrationHandler{ledger: l}
}

type registerEventRequest struct {
	UserID  string `json:"userId"`
	EventID string `json:"eventId"`
}

// Register adds an event id to the user's registration set.
// @Summary Register for an event
// @Tags    registration
// @Accept  json
// @Produce json
// @Param   input body registerEventRequest true "registration payload"
// @Success 201 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /register-event [post]
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	var req registerEventRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.EventID) == "" {
		return presenter.Error(c, http.StatusBadRequest, "userId and eventId are required")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "malformed user identifier")
	}

	if err := h.ledger.Register(c.Context(), userID, req.EventID); err != nil {
		switch {
		case errors.Is(err, directory.ErrUserNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, directory.ErrAlreadyRegistered):
			return presenter.Error(c, http.StatusConflict, "already registered for this event")
		default:
			return presenter.Internal(c, "error during event registration", err)
		}
	}

	return presenter.Message(c, http.StatusCreated, "registration successful")
}

// MyEventIDs returns the raw registration set for status checks.
// @Summary Registered event ids
// @Tags    registration
// @Produce json
// @Param   userId path string true "user id (UUID)"
// @Success 200 {array} string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /myevents-ids/{userId} [get]
func (h *RegistrationHandler) MyEventIDs(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "malformed user identifier")
	}
	ids, err := h.ledger.ListUserEventIDs(c.Context(), userID)
	if err != nil {
		return presenter.Internal(c, "error fetching user event ids", err)
	}
	return presenter.JSON(c, http.StatusOK, ids)
}

// MyEvents resolves the registration set to full event records. Ids that no
// longer resolve are absent from the result.
// @Summary Registered events with details
// @Tags    registration
// @Produce json
// @Param   userId path string true "user id (UUID)"
// @Success 200 {array} catalog.Event
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /myevents/{userId} [get]
func (h *RegistrationHandler) MyEvents(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "malformed user identifier")
	}
	events, err := h.ledger.ListUserEvents(c.Context(), userID)
	if err != nil {
		return presenter.Internal(c, "error fetching user events", err)
	}
	return presenter.JSON(c, http.StatusOK, events)
}
