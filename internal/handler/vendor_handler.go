package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/dto"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/repository"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/service"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/response"
)

// VendorHandler serves the authenticated vendor configuration endpoints
type VendorHandler struct {
	eventRepo         repository.EventRepository
	configRepo        repository.TicketTypeConfigRepository
	modeService       service.ModeService
	productService    service.ProductService
	ticketTypeService service.TicketTypeService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(
	eventRepo repository.EventRepository,
	configRepo repository.TicketTypeConfigRepository,
	modeService service.ModeService,
	productService service.ProductService,
	ticketTypeService service.TicketTypeService,
) *VendorHandler {
	return &VendorHandler{
		eventRepo:         eventRepo,
		configRepo:        configRepo,
		modeService:       modeService,
		productService:    productService,
		ticketTypeService: ticketTypeService,
	}
}

// loadEvent fetches the event or writes the error response. Vendors
// see their events regardless of publication state.
func (h *VendorHandler) loadEvent(c *gin.Context) *domain.Event {
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
	if event == nil {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeEventNotFound, "Event not found"))
		return nil
	}
	return event
}

// SyncTicketTypes handles POST /events/:id/tickets/sync
func (h *VendorHandler) SyncTicketTypes(c *gin.Context) {
	event := h.loadEvent(c)
	if event == nil {
		return
	}

	ctx := c.Request.Context()
	synced, err := h.ticketTypeService.SyncTicketTypesToVariations(ctx, event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to sync ticket types"))
		return
	}

	c.JSON(http.StatusOK, response.Success(h.syncResponse(c, event, synced)))
}

// ReplaceTicketTypes handles PUT /events/:id/ticket-types
func (h *VendorHandler) ReplaceTicketTypes(c *gin.Context) {
	event := h.loadEvent(c)
	if event == nil {
		return
	}

	var req dto.ReplaceTicketTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	configs := make([]*domain.TicketTypeConfig, len(req.TicketTypes))
	for i := range req.TicketTypes {
		configs[i] = req.TicketTypes[i].ToDomain(event.ID)
	}

	synced, err := h.ticketTypeService.ReplaceTicketTypes(c.Request.Context(), event, configs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to replace ticket types"))
		return
	}

	c.JSON(http.StatusOK, response.Success(h.syncResponse(c, event, synced)))
}

// syncResponse builds the post-reconciliation view of the config set
func (h *VendorHandler) syncResponse(c *gin.Context, event *domain.Event, synced bool) *dto.SyncTicketTypesResponse {
	resp := &dto.SyncTicketTypesResponse{
		EventID: event.ID,
		Synced:  synced,
	}
	configs, err := h.configRepo.ListByEvent(c.Request.Context(), event.ID)
	if err != nil {
		return resp
	}
	for _, cfg := range configs {
		resp.TicketTypes = append(resp.TicketTypes, dto.NewTicketTypePayload(cfg))
	}
	return resp
}

// EnsureRSVPProduct handles POST /events/:id/rsvp-product
func (h *VendorHandler) EnsureRSVPProduct(c *gin.Context) {
	event := h.loadEvent(c)
	if event == nil {
		return
	}

	hadProduct := event.HasProduct()
	product, err := h.productService.EnsureRSVPProduct(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, domain.ErrNoStoreConfigured) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeStoreNotConfigured, "No commerce store is configured"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to ensure RSVP product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeInvalidBookingType, "Event booking type does not use an auto-generated RSVP product"))
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.RSVPProductResponse{
		EventID: event.ID,
		Product: dto.NewProductPayload(product),
		Created: !hadProduct,
	}))
}

// CreateRSVPProduct handles POST /rsvp-products, the pre-save path
// where the event does not exist yet.
func (h *VendorHandler) CreateRSVPProduct(c *gin.Context) {
	var req dto.RSVPProductRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	product, err := h.productService.CreateRSVPProductForNewEvent(c.Request.Context(), req.Title)
	if err != nil {
		if errors.Is(err, domain.ErrNoStoreConfigured) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeStoreNotConfigured, "No commerce store is configured"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to create RSVP product"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(&dto.RSVPProductResponse{
		Product: dto.NewProductPayload(product),
		Created: true,
	}))
}

// SyncProduct handles POST /events/:id/product-sync
func (h *VendorHandler) SyncProduct(c *gin.Context) {
	event := h.loadEvent(c)
	if event == nil {
		return
	}

	warnings, err := h.productService.SyncProductToEvent(c.Request.Context(), event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to sync product"))
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.ProductSyncResponse{
		EventID:  event.ID,
		Warnings: warnings,
	}))
}

// GetConfiguration handles GET /events/:id/configuration
func (h *VendorHandler) GetConfiguration(c *gin.Context) {
	event := h.loadEvent(c)
	if event == nil {
		return
	}

	status := h.modeService.ConfigurationStatus(c.Request.Context(), event)
	c.JSON(http.StatusOK, response.Success(&dto.ConfigurationResponse{
		EventID: event.ID,
		Status:  status,
	}))
}
