package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/clock"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
	"github.com/anna-pye/myeventlane-v2-sub000/internal/repository"
	"github.com/anna-pye/myeventlane-v2-sub000/pkg/logger"
)

// modeService implements the ModeService interface. Collaborator
// failures degrade to safe defaults: a page render must never break
// because a secondary data source is down.
type modeService struct {
	productRepo repository.ProductRepository
	oracle      AvailabilityOracle
	clk         clock.Clock
	log         *logger.Logger
}

// NewModeService creates a new ModeService
func NewModeService(productRepo repository.ProductRepository, oracle AvailabilityOracle, clk clock.Clock, log *logger.Logger) ModeService {
	return &modeService{
		productRepo: productRepo,
		oracle:      oracle,
		clk:         clk,
		log:         log,
	}
}

// loadProduct fetches the linked product, degrading to nil on failure.
func (s *modeService) loadProduct(ctx context.Context, event *domain.Event) *domain.Product {
	if event == nil || !event.HasProduct() {
		return nil
	}
	product, err := s.productRepo.GetByID(ctx, *event.ProductID)
	if err != nil {
		s.log.WarnContext(ctx, "failed to load linked product",
			zap.String("event_id", event.ID), zap.String("product_id", *event.ProductID), zap.Error(err))
		return nil
	}
	return product
}

// EffectiveMode resolves the effective booking mode for an event
func (s *modeService) EffectiveMode(ctx context.Context, event *domain.Event) domain.Mode {
	return domain.ResolveMode(event, s.loadProduct(ctx, event))
}

// IsRSVPEnabled reports whether the event offers an RSVP path
func (s *modeService) IsRSVPEnabled(ctx context.Context, event *domain.Event) bool {
	return s.EffectiveMode(ctx, event).RSVPEnabled()
}

// IsTicketsEnabled reports whether the event offers a paid path
func (s *modeService) IsTicketsEnabled(ctx context.Context, event *domain.Event) bool {
	return s.EffectiveMode(ctx, event).TicketsEnabled()
}

// IsExternalLink reports whether bookings happen off-platform
func (s *modeService) IsExternalLink(ctx context.Context, event *domain.Event) bool {
	return s.EffectiveMode(ctx, event).ExternalLink()
}

// IsEventPast reports whether the event is over
func (s *modeService) IsEventPast(event *domain.Event) bool {
	if event == nil {
		return false
	}
	return event.IsPastAt(s.clk.Now())
}

// RSVPAvailability checks the RSVP path
func (s *modeService) RSVPAvailability(ctx context.Context, event *domain.Event) *domain.RSVPAvailability {
	return s.rsvpAvailability(ctx, event, s.EffectiveMode(ctx, event))
}

func (s *modeService) rsvpAvailability(ctx context.Context, event *domain.Event, mode domain.Mode) *domain.RSVPAvailability {
	if !mode.RSVPEnabled() {
		return &domain.RSVPAvailability{Available: false, Reason: domain.ReasonRSVPNotEnabled}
	}
	if s.IsEventPast(event) {
		// Zero, not nil: a past event is definitively closed.
		zero := 0
		return &domain.RSVPAvailability{Available: false, Reason: domain.ReasonEventEnded, SpotsRemaining: &zero}
	}

	availability, err := s.oracle.RSVPRemaining(ctx, event)
	if err != nil {
		s.log.WarnContext(ctx, "availability oracle failed",
			zap.String("event_id", event.ID), zap.Error(err))
		return &domain.RSVPAvailability{Available: false, Reason: domain.ReasonUnavailable}
	}
	return availability
}

// TicketAvailability checks the paid ticket path
func (s *modeService) TicketAvailability(ctx context.Context, event *domain.Event) *domain.TicketAvailability {
	product := s.loadProduct(ctx, event)
	return s.ticketAvailability(ctx, event, domain.ResolveMode(event, product), product)
}

func (s *modeService) ticketAvailability(ctx context.Context, event *domain.Event, mode domain.Mode, product *domain.Product) *domain.TicketAvailability {
	if !mode.TicketsEnabled() {
		return &domain.TicketAvailability{Available: false, Reason: domain.ReasonTicketsNotEnabled}
	}
	if s.IsEventPast(event) {
		return &domain.TicketAvailability{Available: false, Reason: domain.ReasonEventEnded}
	}
	if product == nil {
		return &domain.TicketAvailability{Available: false, Reason: domain.ReasonNoProduct}
	}
	if !product.Published {
		return &domain.TicketAvailability{Available: false, Reason: domain.ReasonNotOnSale, Product: product}
	}
	// Per-variation stock is deliberately not consulted here; the
	// product being linked and on sale is the whole gate.
	return &domain.TicketAvailability{Available: true, Product: product}
}

// IsBookable reports whether at least one booking path is open
func (s *modeService) IsBookable(ctx context.Context, event *domain.Event) bool {
	product := s.loadProduct(ctx, event)
	mode := domain.ResolveMode(event, product)
	if mode == domain.ModeNone {
		return false
	}
	if s.IsEventPast(event) {
		return false
	}
	// External mode is unconditionally bookable once mode/past checks pass.
	if mode.ExternalLink() {
		return true
	}
	if mode.RSVPEnabled() && s.rsvpAvailability(ctx, event, mode).Available {
		return true
	}
	return mode.TicketsEnabled() && s.ticketAvailability(ctx, event, mode, product).Available
}

// PrimaryCTA picks the single call-to-action by priority: tickets over
// RSVP over waitlist over external. Ticket sales are deliberately
// favored in hybrid events.
func (s *modeService) PrimaryCTA(ctx context.Context, event *domain.Event) *domain.CTADecision {
	product := s.loadProduct(ctx, event)
	mode := domain.ResolveMode(event, product)

	if s.IsEventPast(event) {
		return &domain.CTADecision{Kind: domain.CTAEnded, Label: domain.LabelEventEnded}
	}
	if mode == domain.ModeNone {
		return &domain.CTADecision{Kind: domain.CTAComingSoon, Label: domain.LabelComingSoon}
	}

	if mode.TicketsEnabled() {
		if ta := s.ticketAvailability(ctx, event, mode, product); ta.Available {
			return &domain.CTADecision{Kind: domain.CTATickets, Label: domain.LabelBuyTickets, Enabled: true}
		}
	}

	if mode.RSVPEnabled() {
		ra := s.rsvpAvailability(ctx, event, mode)
		if ra.Available {
			return &domain.CTADecision{Kind: domain.CTARSVP, Label: domain.LabelRSVPNow, Enabled: true}
		}
		// Waitlist only when capacity is exactly exhausted, never for
		// "not applicable" states.
		if ra.SpotsRemaining != nil && *ra.SpotsRemaining == 0 {
			return &domain.CTADecision{Kind: domain.CTAWaitlist, Label: domain.LabelJoinWaitlist, Enabled: true}
		}
	}

	if mode.ExternalLink() {
		return &domain.CTADecision{
			Kind:            domain.CTAExternal,
			Label:           domain.LabelGetTickets,
			URL:             event.ExternalURL,
			OpensExternally: true,
			Enabled:         true,
		}
	}

	return &domain.CTADecision{Kind: domain.CTAComingSoon, Label: domain.LabelComingSoon}
}

// AllCTAs returns every active path simultaneously, for UIs rendering
// multiple buttons. RSVP and waitlist are mutually exclusive.
func (s *modeService) AllCTAs(ctx context.Context, event *domain.Event) *domain.CTASet {
	product := s.loadProduct(ctx, event)
	mode := domain.ResolveMode(event, product)
	set := &domain.CTASet{}

	if s.IsEventPast(event) || mode == domain.ModeNone {
		return set
	}

	if mode.TicketsEnabled() {
		if ta := s.ticketAvailability(ctx, event, mode, product); ta.Available {
			set.Tickets = &domain.CTADecision{Kind: domain.CTATickets, Label: domain.LabelBuyTickets, Enabled: true}
		}
	}

	if mode.RSVPEnabled() {
		ra := s.rsvpAvailability(ctx, event, mode)
		switch {
		case ra.Available:
			set.RSVP = &domain.CTADecision{Kind: domain.CTARSVP, Label: domain.LabelRSVPNow, Enabled: true}
		case ra.SpotsRemaining != nil && *ra.SpotsRemaining == 0:
			set.Waitlist = &domain.CTADecision{Kind: domain.CTAWaitlist, Label: domain.LabelJoinWaitlist, Enabled: true}
		}
	}

	if mode.ExternalLink() {
		set.External = &domain.CTADecision{
			Kind:            domain.CTAExternal,
			Label:           domain.LabelGetTickets,
			URL:             event.ExternalURL,
			OpensExternally: true,
			Enabled:         true,
		}
	}

	return set
}

// ConfigurationStatus builds the vendor-facing diagnostic view. It is
// advisory only and never consulted by the booking flow.
func (s *modeService) ConfigurationStatus(ctx context.Context, event *domain.Event) *domain.ConfigurationStatus {
	product := s.loadProduct(ctx, event)
	mode := domain.ResolveMode(event, product)

	status := &domain.ConfigurationStatus{
		Mode:               mode,
		RSVPEnabled:        event.RSVPCapable(),
		RSVPConfigured:     event.RSVPCapable(),
		TicketsEnabled:     event.TicketCapable(),
		TicketsConfigured:  event.TicketCapable() && event.HasProduct(),
		ExternalEnabled:    event.BookingType == domain.BookingTypeExternal,
		ExternalConfigured: event.BookingType == domain.BookingTypeExternal && event.HasExternalURL(),
	}

	switch {
	case mode == domain.ModeNone && event.TicketCapable():
		status.Message = "Link a ticket product or define ticket types to start selling."
	case mode == domain.ModeNone && event.BookingType == domain.BookingTypeExternal:
		status.Message = "Add the external ticketing URL to activate this event."
	case mode == domain.ModeNone:
		status.Message = "Choose a booking type to make this event bookable."
	default:
		status.Message = "Booking configuration looks complete."
	}
	return status
}
