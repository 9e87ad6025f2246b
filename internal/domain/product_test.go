package domain

import (
	"strings"
	"testing"
)

func TestIsAutoGeneratedRSVP(t *testing.T) {
	tests := []struct {
		name       string
		variations []Variation
		want       bool
	}{
		{"single zero-price variation", []Variation{{Price: 0}}, true},
		{"single paid variation", []Variation{{Price: 10}}, false},
		{"two zero-price variations", []Variation{{Price: 0}, {Price: 0}}, false},
		{"no variations", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Variations: tt.variations}
			if got := p.IsAutoGeneratedRSVP(); got != tt.want {
				t.Errorf("IsAutoGeneratedRSVP() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHybrid(t *testing.T) {
	tests := []struct {
		name       string
		variations []Variation
		want       bool
	}{
		{"no variations", nil, false},
		{"single zero-price variation", []Variation{{Price: 0}}, false},
		{"single paid variation", []Variation{{Price: 0.01}}, true},
		{"two variations any price", []Variation{{Price: 0}, {Price: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Variations: tt.variations}
			if got := p.IsHybrid(); got != tt.want {
				t.Errorf("IsHybrid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetitleVariation(t *testing.T) {
	tests := []struct {
		name     string
		oldTitle string
		newTitle string
		want     string
	}{
		{"preserves label suffix", "Spring Gala – VIP", "Autumn Gala", "Autumn Gala – VIP"},
		{"only first delimiter splits", "Gala – VIP – Front Row", "New Gala", "New Gala – VIP – Front Row"},
		{"no delimiter collapses to event title", "Spring Gala", "Autumn Gala", "Autumn Gala"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RetitleVariation(tt.oldTitle, tt.newTitle); got != tt.want {
				t.Errorf("RetitleVariation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlugifyLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Early Bird", "early-bird"},
		{"VIP", "vip"},
		{"  Front / Row!  ", "front-row"},
		{"Member's Discount", "member-s-discount"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SlugifyLabel(tt.in); got != tt.want {
				t.Errorf("SlugifyLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateSKU(t *testing.T) {
	sku := GenerateSKU("event-42", "Early Bird")
	if !strings.HasPrefix(sku, "ticket-event-42-early-bird-") {
		t.Errorf("unexpected SKU prefix: %s", sku)
	}

	// Salted SKUs must not collide for identical inputs.
	if other := GenerateSKU("event-42", "Early Bird"); other == sku {
		t.Errorf("expected distinct SKUs, got %s twice", sku)
	}
}
