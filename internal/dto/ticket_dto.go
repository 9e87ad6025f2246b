package dto

import (
	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// TicketTypeInput is one ticket tier in a vendor submission
type TicketTypeInput struct {
	ID          string  `json:"id" binding:"omitempty"`
	LabelMode   string  `json:"label_mode" binding:"required,oneof=preset custom"`
	PresetKey   string  `json:"preset_key" binding:"omitempty,max=64"`
	CustomLabel string  `json:"custom_label" binding:"omitempty,max=255"`
	Price       float64 `json:"price"`
}

// Validate validates the TicketTypeInput
func (r *TicketTypeInput) Validate() (bool, string) {
	switch domain.LabelMode(r.LabelMode) {
	case domain.LabelModePreset, domain.LabelModeCustom:
	default:
		return false, "Label mode must be preset or custom"
	}
	if domain.LabelMode(r.LabelMode) == domain.LabelModeCustom && r.CustomLabel == "" {
		return false, "Custom label is required for custom label mode"
	}
	if r.Price < 0 {
		return false, "Price must not be negative"
	}
	return true, ""
}

// ToDomain converts the input to a ticket type config
func (r *TicketTypeInput) ToDomain(eventID string) *domain.TicketTypeConfig {
	return &domain.TicketTypeConfig{
		ID:          r.ID,
		EventID:     eventID,
		LabelMode:   domain.LabelMode(r.LabelMode),
		PresetKey:   r.PresetKey,
		CustomLabel: r.CustomLabel,
		Price:       r.Price,
	}
}

// ReplaceTicketTypesRequest is the vendor form submit payload
type ReplaceTicketTypesRequest struct {
	TicketTypes []TicketTypeInput `json:"ticket_types" binding:"required"`
}

// Validate validates the ReplaceTicketTypesRequest
func (r *ReplaceTicketTypesRequest) Validate() (bool, string) {
	for i := range r.TicketTypes {
		if ok, msg := r.TicketTypes[i].Validate(); !ok {
			return false, msg
		}
	}
	return true, ""
}

// TicketTypePayload is the wire form of a stored ticket type config
type TicketTypePayload struct {
	ID          string  `json:"id"`
	LabelMode   string  `json:"label_mode"`
	PresetKey   string  `json:"preset_key,omitempty"`
	CustomLabel string  `json:"custom_label,omitempty"`
	Label       string  `json:"label"`
	Price       float64 `json:"price"`
	VariationID *string `json:"variation_id,omitempty"`
	Weight      int     `json:"weight"`
}

// NewTicketTypePayload converts a config to its wire form
func NewTicketTypePayload(cfg *domain.TicketTypeConfig) *TicketTypePayload {
	return &TicketTypePayload{
		ID:          cfg.ID,
		LabelMode:   string(cfg.LabelMode),
		PresetKey:   cfg.PresetKey,
		CustomLabel: cfg.CustomLabel,
		Label:       cfg.ResolveLabel(),
		Price:       cfg.Price,
		VariationID: cfg.VariationID,
		Weight:      cfg.Weight,
	}
}

// SyncTicketTypesResponse reports the outcome of a reconciliation
type SyncTicketTypesResponse struct {
	EventID     string               `json:"event_id"`
	Synced      bool                 `json:"synced"`
	TicketTypes []*TicketTypePayload `json:"ticket_types,omitempty"`
}
