package repository

import (
	"context"

	"github.com/anna-pye/myeventlane-v2-sub000/internal/domain"
)

// EventRepository manages persistence for events. Lookups return
// (nil, nil) when no row matches.
type EventRepository interface {
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Create inserts a new event
	Create(ctx context.Context, event *domain.Event) error
	// Update updates an event's mutable fields
	Update(ctx context.Context, event *domain.Event) error
	// SetProductID links a commerce product to an event
	SetProductID(ctx context.Context, eventID, productID string) error
}

// ProductRepository manages commerce products and their variations.
type ProductRepository interface {
	// GetByID retrieves a product with its variations loaded in order
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// Create inserts a product and any attached variations
	Create(ctx context.Context, product *domain.Product) error
	// SetEventID repairs the product's back-reference to its event
	SetEventID(ctx context.Context, productID, eventID string) error
	// UpdateTitle renames a product
	UpdateTitle(ctx context.Context, productID, title string) error
	// GetVariation retrieves a single variation by ID
	GetVariation(ctx context.Context, id string) (*domain.Variation, error)
	// CreateVariation appends a variation to its product
	CreateVariation(ctx context.Context, v *domain.Variation) error
	// UpdateVariation updates a variation's title, price and publish state
	UpdateVariation(ctx context.Context, v *domain.Variation) error
	// UpdateVariationTitle renames a variation, leaving its price and
	// publish state untouched
	UpdateVariationTitle(ctx context.Context, id, title string) error
	// UnpublishVariation retires a variation without deleting it
	UnpublishVariation(ctx context.Context, id string) error
	// GetStoreCurrency returns the currency code of a commerce store
	GetStoreCurrency(ctx context.Context, storeID string) (string, error)
	// WithEventLock runs fn inside a transaction holding a per-event
	// advisory lock, serializing concurrent reconciliations of the
	// same event
	WithEventLock(ctx context.Context, eventID string, fn func(ctx context.Context) error) error
}

// TicketTypeConfigRepository manages vendor-authored ticket tier configs.
type TicketTypeConfigRepository interface {
	// ListByEvent returns an event's configs ordered by weight
	ListByEvent(ctx context.Context, eventID string) ([]*domain.TicketTypeConfig, error)
	// ReplaceForEvent replaces an event's configs with the given set
	ReplaceForEvent(ctx context.Context, eventID string, configs []*domain.TicketTypeConfig) error
	// SetVariationID stores the synced variation handle on a config
	SetVariationID(ctx context.Context, configID, variationID string) error
}
