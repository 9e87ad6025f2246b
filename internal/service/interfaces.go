package service

import (
	"context"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// AvailabilityOracle answers remaining-capacity queries for the RSVP
// path. Mode resolution treats it as an injected collaborator so the
// decision engine stays a pure function of its dependencies.
type AvailabilityOracle interface {
	// RSVPRemaining reports whether RSVP slots remain for the event
	RSVPRemaining(ctx context.Context, event *domain.Event) (*domain.RSVPAvailability, error)
}

// ModeService is the single source of truth mapping raw event
// configuration to an effective booking mode, and deriving
// availability and call-to-action decisions from it.
type ModeService interface {
	// EffectiveMode resolves the effective booking mode for an event
	EffectiveMode(ctx context.Context, event *domain.Event) domain.Mode
	// IsRSVPEnabled reports whether the event offers an RSVP path
	IsRSVPEnabled(ctx context.Context, event *domain.Event) bool
	// IsTicketsEnabled reports whether the event offers a paid path
	IsTicketsEnabled(ctx context.Context, event *domain.Event) bool
	// IsExternalLink reports whether bookings happen off-platform
	IsExternalLink(ctx context.Context, event *domain.Event) bool
	// IsEventPast reports whether the event is over
	IsEventPast(event *domain.Event) bool
	// RSVPAvailability checks the RSVP path
	RSVPAvailability(ctx context.Context, event *domain.Event) *domain.RSVPAvailability
	// TicketAvailability checks the paid ticket path
	TicketAvailability(ctx context.Context, event *domain.Event) *domain.TicketAvailability
	// IsBookable reports whether at least one booking path is open
	IsBookable(ctx context.Context, event *domain.Event) bool
	// PrimaryCTA picks the single call-to-action by priority
	PrimaryCTA(ctx context.Context, event *domain.Event) *domain.CTADecision
	// AllCTAs returns every active path simultaneously
	AllCTAs(ctx context.Context, event *domain.Event) *domain.CTASet
	// ConfigurationStatus builds the vendor-facing diagnostic view
	ConfigurationStatus(ctx context.Context, event *domain.Event) *domain.ConfigurationStatus
}

// ProductService manages the auto-generated RSVP product lifecycle.
type ProductService interface {
	// EnsureRSVPProduct guarantees an rsvp-only event has its
	// zero-price product; returns nil for other booking types
	EnsureRSVPProduct(ctx context.Context, event *domain.Event) (*domain.Product, error)
	// CreateRSVPProductForNewEvent creates the product before the
	// event itself has been persisted
	CreateRSVPProductForNewEvent(ctx context.Context, title string) (*domain.Product, error)
	// SyncProductToEvent reconciles the product link on event save,
	// returning advisory warnings for the vendor
	SyncProductToEvent(ctx context.Context, event *domain.Event) ([]string, error)
	// IsAutoGeneratedRSVPProduct reports the auto-product invariant
	IsAutoGeneratedRSVPProduct(product *domain.Product) bool
}

// TicketTypeService reconciles vendor ticket-type configs into
// commerce variations.
type TicketTypeService interface {
	// SyncTicketTypesToVariations runs the reconciliation; returns
	// false when the event has no paid path or no product could be
	// obtained
	SyncTicketTypesToVariations(ctx context.Context, event *domain.Event) (bool, error)
	// ReplaceTicketTypes stores a new config set then reconciles
	ReplaceTicketTypes(ctx context.Context, event *domain.Event, configs []*domain.TicketTypeConfig) (bool, error)
}

// EventTypeService is a read-only presentation façade over ModeService.
type EventTypeService interface {
	// TypeLabel returns the human-readable booking type label
	TypeLabel(mode domain.Mode) string
	// CTALabel returns the full call-to-action label for a mode
	CTALabel(mode domain.Mode) string
	// ShortCTALabel returns the compact call-to-action label
	ShortCTALabel(mode domain.Mode) string
	// TemplateVariables aggregates everything a rendering layer needs
	TemplateVariables(ctx context.Context, event *domain.Event) *TemplateVariables
}
