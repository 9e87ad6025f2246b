package domain

// Mode is the resolved booking-path classification for an event. It is
// derived, never stored, and must be recomputed on every query.
type Mode string

const (
	ModeRSVP     Mode = "rsvp"
	ModePaid     Mode = "paid"
	ModeBoth     Mode = "both"
	ModeExternal Mode = "external"
	ModeNone     Mode = "none"
)

// ResolveMode maps raw event configuration to the effective booking
// mode. It is a total function: misconfigured states resolve to
// ModeNone rather than an error. The product argument is the linked
// product when one could be loaded; a nil product with a product link
// present is treated as non-hybrid.
func ResolveMode(event *Event, product *Product) Mode {
	if event == nil {
		return ModeNone
	}
	switch {
	case event.BookingType == BookingTypeExternal && event.HasExternalURL():
		return ModeExternal
	case event.BookingType == BookingTypeBoth && event.HasProduct():
		return ModeBoth
	case event.BookingType == BookingTypeRSVP && event.HasProduct():
		// An rsvp-flagged event whose product carries paid inventory
		// is effectively hybrid.
		if product != nil && product.IsHybrid() {
			return ModeBoth
		}
		return ModeRSVP
	case event.BookingType == BookingTypeRSVP:
		return ModeRSVP
	case event.BookingType == BookingTypePaid && event.HasProduct():
		return ModePaid
	default:
		// Covers paid-without-product and unset/misconfigured states.
		return ModeNone
	}
}

// RSVPEnabled reports whether the mode includes an RSVP path.
func (m Mode) RSVPEnabled() bool {
	return m == ModeRSVP || m == ModeBoth
}

// TicketsEnabled reports whether the mode includes a paid ticket path.
func (m Mode) TicketsEnabled() bool {
	return m == ModePaid || m == ModeBoth
}

// ExternalLink reports whether bookings happen off-platform.
func (m Mode) ExternalLink() bool {
	return m == ModeExternal
}
