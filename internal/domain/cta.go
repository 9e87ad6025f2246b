package domain

// CTAKind identifies the call-to-action offered for an event.
type CTAKind string

const (
	CTATickets    CTAKind = "tickets"
	CTARSVP       CTAKind = "rsvp"
	CTAWaitlist   CTAKind = "waitlist"
	CTAExternal   CTAKind = "external"
	CTAEnded      CTAKind = "ended"
	CTAComingSoon CTAKind = "coming_soon"
)

// CTA labels shown on the primary action button.
const (
	LabelBuyTickets   = "Buy Tickets"
	LabelRSVPNow      = "RSVP Now"
	LabelJoinWaitlist = "Join Waitlist"
	LabelGetTickets   = "Get Tickets"
	LabelEventEnded   = "Event Ended"
	LabelComingSoon   = "Coming Soon"
)

// CTADecision is a resolved call-to-action. URL is set only for
// external CTAs, which open off-platform (never same-tab).
type CTADecision struct {
	Kind            CTAKind `json:"kind"`
	Label           string  `json:"label"`
	URL             string  `json:"url,omitempty"`
	OpensExternally bool    `json:"opens_externally"`
	Enabled         bool    `json:"enabled"`
}

// CTASet holds every active path simultaneously, for UIs that render
// multiple buttons. RSVP and Waitlist are mutually exclusive.
type CTASet struct {
	Tickets  *CTADecision `json:"tickets,omitempty"`
	RSVP     *CTADecision `json:"rsvp,omitempty"`
	Waitlist *CTADecision `json:"waitlist,omitempty"`
	External *CTADecision `json:"external,omitempty"`
}

// RSVPAvailability is the result of an RSVP availability check.
// SpotsRemaining is nil when not applicable (RSVP disabled, or
// unlimited capacity) and exactly zero when capacity is exhausted.
type RSVPAvailability struct {
	Available      bool   `json:"available"`
	Reason         string `json:"reason,omitempty"`
	SpotsRemaining *int   `json:"spots_remaining,omitempty"`
}

// TicketAvailability is the result of a ticket availability check.
type TicketAvailability struct {
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
	Product   *Product `json:"product,omitempty"`
}

// Availability reason strings surfaced to rendering layers.
const (
	ReasonRSVPNotEnabled    = "RSVP is not enabled for this event"
	ReasonTicketsNotEnabled = "tickets are not enabled for this event"
	ReasonEventEnded        = "ended"
	ReasonNoProduct         = "no product configured"
	ReasonNotOnSale         = "not currently on sale"
	ReasonCapacityReached   = "RSVP capacity reached"
	ReasonUnavailable       = "availability temporarily unavailable"
)

// ConfigurationStatus is a vendor-facing diagnostic view of the booking
// configuration. It never affects the booking flow.
type ConfigurationStatus struct {
	Mode               Mode   `json:"mode"`
	RSVPEnabled        bool   `json:"rsvp_enabled"`
	RSVPConfigured     bool   `json:"rsvp_configured"`
	TicketsEnabled     bool   `json:"tickets_enabled"`
	TicketsConfigured  bool   `json:"tickets_configured"`
	ExternalEnabled    bool   `json:"external_enabled"`
	ExternalConfigured bool   `json:"external_configured"`
	Message            string `json:"message"`
}
