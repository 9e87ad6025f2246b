package dto

import (
	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/service"
)

// ModeResponse reports the effective booking mode of an event
type ModeResponse struct {
	EventID string      `json:"event_id"`
	Mode    domain.Mode `json:"mode"`
}

// CTAResponse carries the primary call to action for an event
type CTAResponse struct {
	EventID string              `json:"event_id"`
	CTA     *domain.CTADecision `json:"cta"`
}

// CTASetResponse carries every applicable call to action
type CTASetResponse struct {
	EventID string         `json:"event_id"`
	CTAs    *domain.CTASet `json:"ctas"`
}

// AvailabilityResponse reports both booking paths for an event
type AvailabilityResponse struct {
	EventID  string                     `json:"event_id"`
	Mode     domain.Mode                `json:"mode"`
	Bookable bool                       `json:"bookable"`
	RSVP     *domain.RSVPAvailability   `json:"rsvp"`
	Tickets  *domain.TicketAvailability `json:"tickets"`
}

// DisplayResponse is the full presentation bundle for event rendering
type DisplayResponse struct {
	EventID string                     `json:"event_id"`
	Display *service.TemplateVariables `json:"display"`
}

// ConfigurationResponse reports the vendor-facing configuration status
type ConfigurationResponse struct {
	EventID string                      `json:"event_id"`
	Status  *domain.ConfigurationStatus `json:"status"`
}

// ProductSyncResponse reports the outcome of a product link reconciliation
type ProductSyncResponse struct {
	EventID  string   `json:"event_id"`
	Warnings []string `json:"warnings,omitempty"`
}

// RSVPProductRequest optionally names the event title when the product
// is created ahead of the event save
type RSVPProductRequest struct {
	Title string `json:"title" binding:"omitempty,max=255"`
}

// RSVPProductResponse carries the ensured RSVP product
type RSVPProductResponse struct {
	EventID string          `json:"event_id,omitempty"`
	Product *ProductPayload `json:"product"`
	Created bool            `json:"created"`
}

// ProductPayload is the wire form of a commerce product
type ProductPayload struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Published  bool               `json:"published"`
	Variations []VariationPayload `json:"variations"`
}

// VariationPayload is the wire form of a product variation
type VariationPayload struct {
	ID        string  `json:"id"`
	SKU       string  `json:"sku"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Published bool    `json:"published"`
}

// NewProductPayload converts a domain product to its wire form
func NewProductPayload(p *domain.Product) *ProductPayload {
	if p == nil {
		return nil
	}
	payload := &ProductPayload{
		ID:        p.ID,
		Title:     p.Title,
		Published: p.Published,
	}
	for _, v := range p.Variations {
		payload.Variations = append(payload.Variations, VariationPayload{
			ID:        v.ID,
			SKU:       v.SKU,
			Title:     v.Title,
			Price:     v.Price,
			Currency:  v.Currency,
			Published: v.Published,
		})
	}
	return payload
}
