package domain

import "time"

// BookingType is the vendor-selected booking flag stored on an event.
// It is raw configuration, not the effective mode; see ResolveMode.
type BookingType string

const (
	BookingTypeRSVP     BookingType = "rsvp"
	BookingTypePaid     BookingType = "paid"
	BookingTypeBoth     BookingType = "both"
	BookingTypeExternal BookingType = "external"
)

// Event represents an event in the system
type Event struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	VendorID    string      `json:"vendor_id"`
	Title       string      `json:"title"`
	BookingType BookingType `json:"booking_type"` // rsvp, paid, both, external, or empty (unset)
	ProductID   *string     `json:"product_id,omitempty"`
	ExternalURL string      `json:"external_url,omitempty"`
	Capacity    int         `json:"capacity"` // RSVP capacity; 0 = unlimited
	StartTime   *time.Time  `json:"start_time,omitempty"`
	EndTime     *time.Time  `json:"end_time,omitempty"`
	Published   bool        `json:"published"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	DeletedAt   *time.Time  `json:"deleted_at,omitempty"`
}

// HasProduct reports whether a commerce product is linked to the event.
func (e *Event) HasProduct() bool {
	return e.ProductID != nil && *e.ProductID != ""
}

// HasExternalURL reports whether an external ticketing URL is configured.
func (e *Event) HasExternalURL() bool {
	return e.ExternalURL != ""
}

// RSVPCapable reports whether the raw booking flag allows an RSVP path.
func (e *Event) RSVPCapable() bool {
	return e.BookingType == BookingTypeRSVP || e.BookingType == BookingTypeBoth
}

// TicketCapable reports whether the raw booking flag allows a paid path.
func (e *Event) TicketCapable() bool {
	return e.BookingType == BookingTypePaid || e.BookingType == BookingTypeBoth
}

// EndsAt returns the instant the event is considered over. EndTime falls
// back to StartTime; nil means the event never ends.
func (e *Event) EndsAt() *time.Time {
	if e.EndTime != nil {
		return e.EndTime
	}
	return e.StartTime
}

// IsPastAt reports whether the event is over at the given instant.
// Callers must pass a single instant for all checks within one
// resolution so results cannot straddle a clock tick.
func (e *Event) IsPastAt(now time.Time) bool {
	ends := e.EndsAt()
	if ends == nil {
		return false
	}
	return ends.Before(now)
}
