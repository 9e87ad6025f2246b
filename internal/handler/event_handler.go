package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/dto"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/repository"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/service"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/response"
)

// EventHandler serves the public booking-state endpoints
type EventHandler struct {
	eventRepo        repository.EventRepository
	modeService      service.ModeService
	eventTypeService service.EventTypeService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(
	eventRepo repository.EventRepository,
	modeService service.ModeService,
	eventTypeService service.EventTypeService,
) *EventHandler {
	return &EventHandler{
		eventRepo:        eventRepo,
		modeService:      modeService,
		eventTypeService: eventTypeService,
	}
}

// loadPublishedEvent fetches the event or writes the error response.
// Unpublished events are invisible on the public surface.
func (h *EventHandler) loadPublishedEvent(c *gin.Context) *domain.Event {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Event ID is required"))
		return nil
	}

	event, err := h.eventRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to load event"))
		return nil
	}
	if event == nil || !event.Published {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeEventNotFound, "Event not found"))
		return nil
	}
	return event
}

// GetMode handles GET /events/:id/mode
func (h *EventHandler) GetMode(c *gin.Context) {
	event := h.loadPublishedEvent(c)
	if event == nil {
		return
	}

	mode := h.modeService.EffectiveMode(c.Request.Context(), event)
	c.JSON(http.StatusOK, response.Success(&dto.ModeResponse{
		EventID: event.ID,
		Mode:    mode,
	}))
}

// GetPrimaryCTA handles GET /events/:id/cta
func (h *EventHandler) GetPrimaryCTA(c *gin.Context) {
	event := h.loadPublishedEvent(c)
	if event == nil {
		return
	}

	cta := h.modeService.PrimaryCTA(c.Request.Context(), event)
	c.JSON(http.StatusOK, response.Success(&dto.CTAResponse{
		EventID: event.ID,
		CTA:     cta,
	}))
}

// GetAllCTAs handles GET /events/:id/ctas
func (h *EventHandler) GetAllCTAs(c *gin.Context) {
	event := h.loadPublishedEvent(c)
	if event == nil {
		return
	}

	ctas := h.modeService.AllCTAs(c.Request.Context(), event)
	c.JSON(http.StatusOK, response.Success(&dto.CTASetResponse{
		EventID: event.ID,
		CTAs:    ctas,
	}))
}

// GetAvailability handles GET /events/:id/availability
func (h *EventHandler) GetAvailability(c *gin.Context) {
	event := h.loadPublishedEvent(c)
	if event == nil {
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, response.Success(&dto.AvailabilityResponse{
		EventID:  event.ID,
		Mode:     h.modeService.EffectiveMode(ctx, event),
		Bookable: h.modeService.IsBookable(ctx, event),
		RSVP:     h.modeService.RSVPAvailability(ctx, event),
		Tickets:  h.modeService.TicketAvailability(ctx, event),
	}))
}

// GetDisplay handles GET /events/:id/display
func (h *EventHandler) GetDisplay(c *gin.Context) {
	event := h.loadPublishedEvent(c)
	if event == nil {
		return
	}

	vars := h.eventTypeService.TemplateVariables(c.Request.Context(), event)
	c.JSON(http.StatusOK, response.Success(&dto.DisplayResponse{
		EventID: event.ID,
		Display: vars,
	}))
}
