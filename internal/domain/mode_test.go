package domain

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func productWith(variations ...Variation) *Product {
	return &Product{
		ID:         "prod-1",
		StoreID:    "store-1",
		Title:      "Test Event",
		Published:  true,
		Variations: variations,
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name    string
		event   *Event
		product *Product
		want    Mode
	}{
		{
			name:  "nil event",
			event: nil,
			want:  ModeNone,
		},
		{
			name:  "unset type no product",
			event: &Event{ID: "e1"},
			want:  ModeNone,
		},
		{
			name:  "invalid type no product",
			event: &Event{ID: "e1", BookingType: "banquet"},
			want:  ModeNone,
		},
		{
			name:  "rsvp no product",
			event: &Event{ID: "e1", BookingType: BookingTypeRSVP},
			want:  ModeRSVP,
		},
		{
			name:    "rsvp with zero-price single-variation product",
			event:   &Event{ID: "e1", BookingType: BookingTypeRSVP, ProductID: strPtr("prod-1")},
			product: productWith(Variation{ID: "v1", Price: 0}),
			want:    ModeRSVP,
		},
		{
			name:    "rsvp with single paid variation is hybrid",
			event:   &Event{ID: "e1", BookingType: BookingTypeRSVP, ProductID: strPtr("prod-1")},
			product: productWith(Variation{ID: "v1", Price: 25}),
			want:    ModeBoth,
		},
		{
			name:    "rsvp with two variations is hybrid regardless of price",
			event:   &Event{ID: "e1", BookingType: BookingTypeRSVP, ProductID: strPtr("prod-1")},
			product: productWith(Variation{ID: "v1", Price: 0}, Variation{ID: "v2", Price: 0}),
			want:    ModeBoth,
		},
		{
			name:    "rsvp with linked product that failed to load",
			event:   &Event{ID: "e1", BookingType: BookingTypeRSVP, ProductID: strPtr("prod-1")},
			product: nil,
			want:    ModeRSVP,
		},
		{
			name:    "paid with product",
			event:   &Event{ID: "e1", BookingType: BookingTypePaid, ProductID: strPtr("prod-1")},
			product: productWith(Variation{ID: "v1", Price: 25}),
			want:    ModePaid,
		},
		{
			name:  "paid without product is misconfigured",
			event: &Event{ID: "e1", BookingType: BookingTypePaid},
			want:  ModeNone,
		},
		{
			name:    "both with product",
			event:   &Event{ID: "e1", BookingType: BookingTypeBoth, ProductID: strPtr("prod-1")},
			product: productWith(Variation{ID: "v1", Price: 25}),
			want:    ModeBoth,
		},
		{
			name:  "both without product is misconfigured",
			event: &Event{ID: "e1", BookingType: BookingTypeBoth},
			want:  ModeNone,
		},
		{
			name:  "external with url",
			event: &Event{ID: "e1", BookingType: BookingTypeExternal, ExternalURL: "https://tickets.example.com"},
			want:  ModeExternal,
		},
		{
			name:  "external without url is misconfigured",
			event: &Event{ID: "e1", BookingType: BookingTypeExternal},
			want:  ModeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMode(tt.event, tt.product)
			if got != tt.want {
				t.Errorf("ResolveMode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestModePredicates(t *testing.T) {
	tests := []struct {
		mode     Mode
		rsvp     bool
		tickets  bool
		external bool
	}{
		{ModeRSVP, true, false, false},
		{ModePaid, false, true, false},
		{ModeBoth, true, true, false},
		{ModeExternal, false, false, true},
		{ModeNone, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.RSVPEnabled(); got != tt.rsvp {
				t.Errorf("RSVPEnabled() = %v, want %v", got, tt.rsvp)
			}
			if got := tt.mode.TicketsEnabled(); got != tt.tickets {
				t.Errorf("TicketsEnabled() = %v, want %v", got, tt.tickets)
			}
			if got := tt.mode.ExternalLink(); got != tt.external {
				t.Errorf("ExternalLink() = %v, want %v", got, tt.external)
			}
		})
	}
}

func TestEventIsPastAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-2 * time.Hour)
	after := now.Add(2 * time.Hour)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  bool
	}{
		{"no times means never past", nil, nil, false},
		{"end time in the past", &before, &before, true},
		{"end time in the future", &before, &after, false},
		{"falls back to start time", &before, nil, true},
		{"start only in the future", &after, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{ID: "e1", StartTime: tt.start, EndTime: tt.end}
			if got := e.IsPastAt(now); got != tt.want {
				t.Errorf("IsPastAt() = %v, want %v", got, tt.want)
			}
		})
	}
}
