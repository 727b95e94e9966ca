package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campushub/clubevents/api/http/presenter"
	"github.com/campushub/clubevents/pkg/catalog"
)

type EventsHandler struct {
	events catalog.UseCase
}

func NewEventsHandler(events catalog.UseCase) *EventsHandler {
	return &EventsHandler{events: events}
}

// List returns the whole catalog.
// @Summary List all events
// @Tags    events
// @Produce json
// @Success 200 {array} catalog.Event
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /events [get]
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.events.ListAll(c.Context())
	if err != nil {
		return presenter.Internal(c, "error fetching events", err)
	}
	return presenter.JSON(c, http.StatusOK, events)
}
