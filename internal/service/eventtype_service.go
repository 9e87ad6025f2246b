package service

import (
	"context"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// typeLabels maps modes to human-readable booking type labels.
var typeLabels = map[domain.Mode]string{
	domain.ModeRSVP:     "RSVP Event",
	domain.ModePaid:     "Ticketed Event",
	domain.ModeBoth:     "RSVP + Tickets",
	domain.ModeExternal: "External Tickets",
	domain.ModeNone:     "Coming Soon",
}

// ctaLabels maps modes to full call-to-action labels.
var ctaLabels = map[domain.Mode]string{
	domain.ModeRSVP:     domain.LabelRSVPNow,
	domain.ModePaid:     domain.LabelBuyTickets,
	domain.ModeBoth:     domain.LabelBuyTickets,
	domain.ModeExternal: domain.LabelGetTickets,
	domain.ModeNone:     domain.LabelComingSoon,
}

// shortCTALabels maps modes to compact call-to-action labels.
var shortCTALabels = map[domain.Mode]string{
	domain.ModeRSVP:     "RSVP",
	domain.ModePaid:     "Tickets",
	domain.ModeBoth:     "Tickets",
	domain.ModeExternal: "Tickets",
	domain.ModeNone:     "Soon",
}

// TemplateVariables is the aggregate bag a rendering layer needs to
// present an event's booking state.
type TemplateVariables struct {
	Mode           domain.Mode         `json:"mode"`
	TypeLabel      string              `json:"type_label"`
	CTALabel       string              `json:"cta_label"`
	ShortCTALabel  string              `json:"short_cta_label"`
	RSVPEnabled    bool                `json:"rsvp_enabled"`
	TicketsEnabled bool                `json:"tickets_enabled"`
	ExternalLink   bool                `json:"external_link"`
	IsPast         bool                `json:"is_past"`
	Bookable       bool                `json:"bookable"`
	PrimaryCTA     *domain.CTADecision `json:"primary_cta"`
	CTAs           *domain.CTASet      `json:"ctas"`
}

// eventTypeService is a read-only façade over ModeService. No
// independent logic lives here; it must stay in lock-step with the
// Mode vocabulary.
type eventTypeService struct {
	modeService ModeService
}

// NewEventTypeService creates a new EventTypeService
func NewEventTypeService(modeService ModeService) EventTypeService {
	return &eventTypeService{modeService: modeService}
}

// TypeLabel returns the human-readable booking type label
func (s *eventTypeService) TypeLabel(mode domain.Mode) string {
	if label, ok := typeLabels[mode]; ok {
		return label
	}
	return typeLabels[domain.ModeNone]
}

// CTALabel returns the full call-to-action label for a mode
func (s *eventTypeService) CTALabel(mode domain.Mode) string {
	if label, ok := ctaLabels[mode]; ok {
		return label
	}
	return ctaLabels[domain.ModeNone]
}

// ShortCTALabel returns the compact call-to-action label
func (s *eventTypeService) ShortCTALabel(mode domain.Mode) string {
	if label, ok := shortCTALabels[mode]; ok {
		return label
	}
	return shortCTALabels[domain.ModeNone]
}

// TemplateVariables aggregates everything a rendering layer needs
func (s *eventTypeService) TemplateVariables(ctx context.Context, event *domain.Event) *TemplateVariables {
	mode := s.modeService.EffectiveMode(ctx, event)
	return &TemplateVariables{
		Mode:           mode,
		TypeLabel:      s.TypeLabel(mode),
		CTALabel:       s.CTALabel(mode),
		ShortCTALabel:  s.ShortCTALabel(mode),
		RSVPEnabled:    mode.RSVPEnabled(),
		TicketsEnabled: mode.TicketsEnabled(),
		ExternalLink:   mode.ExternalLink(),
		IsPast:         s.modeService.IsEventPast(event),
		Bookable:       s.modeService.IsBookable(ctx, event),
		PrimaryCTA:     s.modeService.PrimaryCTA(ctx, event),
		CTAs:           s.modeService.AllCTAs(ctx, event),
	}
}
