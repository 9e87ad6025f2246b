package service

import (
	"context"
	"testing"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

func newTypeFixture() (*modeFixture, EventTypeService) {
	f := newModeFixture()
	return f, NewEventTypeService(f.svc)
}

func TestTypeLabel(t *testing.T) {
	_, svc := newTypeFixture()
	tests := []struct {
		mode domain.Mode
		want string
	}{
		{domain.ModeRSVP, "RSVP Event"},
		{domain.ModePaid, "Ticketed Event"},
		{domain.ModeBoth, "RSVP + Tickets"},
		{domain.ModeExternal, "External Tickets"},
		{domain.ModeNone, "Coming Soon"},
		{domain.Mode("bogus"), "Coming Soon"},
	}
	for _, tt := range tests {
		if got := svc.TypeLabel(tt.mode); got != tt.want {
			t.Errorf("TypeLabel(%s) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestCTALabels(t *testing.T) {
	_, svc := newTypeFixture()
	if got := svc.CTALabel(domain.ModeRSVP); got != domain.LabelRSVPNow {
		t.Errorf("CTALabel(rsvp) = %q", got)
	}
	if got := svc.CTALabel(domain.ModeBoth); got != domain.LabelBuyTickets {
		t.Errorf("CTALabel(both) = %q", got)
	}
	if got := svc.CTALabel(domain.ModeExternal); got != domain.LabelGetTickets {
		t.Errorf("CTALabel(external) = %q", got)
	}
	if got := svc.ShortCTALabel(domain.ModeRSVP); got != "RSVP" {
		t.Errorf("ShortCTALabel(rsvp) = %q", got)
	}
	if got := svc.ShortCTALabel(domain.Mode("bogus")); got != "Soon" {
		t.Errorf("ShortCTALabel(bogus) = %q", got)
	}
}

func TestTemplateVariables(t *testing.T) {
	f, svc := newTypeFixture()
	event := futureEvent(domain.BookingTypeBoth)
	f.linkProduct(event, domain.Variation{ID: "v1", ProductID: "prod-1", Price: 45, Published: true})

	vars := svc.TemplateVariables(context.Background(), event)
	if vars.Mode != domain.ModeBoth {
		t.Errorf("mode = %s, want both", vars.Mode)
	}
	if !vars.RSVPEnabled || !vars.TicketsEnabled || vars.ExternalLink {
		t.Errorf("flags wrong: %+v", vars)
	}
	if vars.IsPast {
		t.Error("future event reported past")
	}
	if !vars.Bookable {
		t.Error("expected bookable")
	}
	if vars.PrimaryCTA == nil || vars.PrimaryCTA.Kind != domain.CTATickets {
		t.Errorf("primary CTA = %+v, want tickets", vars.PrimaryCTA)
	}
	if vars.CTAs == nil || vars.CTAs.Tickets == nil || vars.CTAs.RSVP == nil {
		t.Errorf("cta set = %+v", vars.CTAs)
	}
	if vars.TypeLabel != "RSVP + Tickets" || vars.CTALabel != domain.LabelBuyTickets {
		t.Errorf("labels wrong: %+v", vars)
	}
}

func TestTemplateVariablesPastEvent(t *testing.T) {
	_, svc := newTypeFixture()
	vars := svc.TemplateVariables(context.Background(), pastEvent(domain.BookingTypeRSVP))

	if !vars.IsPast {
		t.Error("expected past flag")
	}
	if vars.Bookable {
		t.Error("past event must not be bookable")
	}
	if vars.PrimaryCTA == nil || vars.PrimaryCTA.Kind != domain.CTAEnded {
		t.Errorf("primary CTA = %+v, want ended", vars.PrimaryCTA)
	}
}
