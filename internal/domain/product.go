package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TitleDelimiter separates the event title from the ticket label in
// product and variation titles ("Spring Gala – VIP").
const TitleDelimiter = " – "

// DefaultCurrency is used when the owning store has no currency configured.
const DefaultCurrency = "AUD"

// Product is a commerce product linked to an event. An event that sells
// tickets (or offers free RSVPs through the commerce layer) owns exactly
// one product; the product owns an ordered set of variations.
type Product struct {
	ID         string      `json:"id"`
	EventID    *string     `json:"event_id,omitempty"` // back-reference, repaired on sync
	StoreID    string      `json:"store_id"`
	Title      string      `json:"title"`
	Published  bool        `json:"published"`
	Variations []Variation `json:"variations"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Variation is one priced, purchasable SKU under a product.
type Variation struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAutoGeneratedRSVP reports whether the product is the zero-price
// product generated for RSVP-only events: exactly one variation priced
// at exactly zero.
func (p *Product) IsAutoGeneratedRSVP() bool {
	return len(p.Variations) == 1 && p.Variations[0].Price == 0
}

// IsHybrid reports whether a product linked to an rsvp-flagged event
// actually carries paid inventory, upgrading the effective mode to both:
// more than one variation, or a single variation priced above zero.
// A product with no variations is never hybrid.
func (p *Product) IsHybrid() bool {
	if len(p.Variations) > 1 {
		return true
	}
	return len(p.Variations) == 1 && p.Variations[0].Price > 0
}

// VariationTitle builds the canonical "{event title} – {label}" title.
func VariationTitle(eventTitle, label string) string {
	return eventTitle + TitleDelimiter + label
}

// RetitleVariation re-derives a variation title against a new event
// title, preserving the label suffix after the first delimiter. Titles
// without a delimiter collapse to the bare event title.
func RetitleVariation(oldTitle, newEventTitle string) string {
	if _, suffix, ok := strings.Cut(oldTitle, TitleDelimiter); ok {
		return VariationTitle(newEventTitle, suffix)
	}
	return newEventTitle
}

// SlugifyLabel lowercases a label and collapses runs of non-alphanumeric
// characters into single hyphens, trimming leading/trailing hyphens.
func SlugifyLabel(label string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// GenerateSKU builds a collision-resistant SKU for a ticket variation.
// The uuid suffix guarantees uniqueness without a retry loop.
func GenerateSKU(eventID, label string) string {
	salt := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return "ticket-" + eventID + "-" + SlugifyLabel(label) + "-" + salt
}
