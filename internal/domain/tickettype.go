package domain

import (
	"strings"
	"time"
)

// LabelMode selects where a ticket type's display label comes from.
type LabelMode string

const (
	LabelModePreset LabelMode = "preset"
	LabelModeCustom LabelMode = "custom"
)

// FallbackTicketLabel is used when neither a custom label nor a preset
// key yields a label.
const FallbackTicketLabel = "Ticket"

// presetLabels is the fixed vocabulary of ticket tier presets.
var presetLabels = map[string]string{
	"full_price": "Full Price",
	"concession": "Concession",
	"child":      "Child",
	"member":     "Member",
	"free":       "Free",
	"student":    "Student",
	"senior":     "Senior",
	"early_bird": "Early Bird",
	"vip":        "VIP",
}

// TicketTypeConfig is a vendor-authored description of one purchasable
// ticket tier. It is reconciled into a commerce variation by the ticket
// type sync; VariationID is the handle to the synced variation, created
// empty and populated on first sync.
type TicketTypeConfig struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	LabelMode   LabelMode `json:"label_mode"`
	PresetKey   string    `json:"preset_key,omitempty"`
	CustomLabel string    `json:"custom_label,omitempty"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"` // 0 = inactive for display only; does not gate sales
	VariationID *string   `json:"variation_id,omitempty"`
	Weight      int       `json:"weight"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ResolveLabel returns the display label for the tier: the custom label
// when mode is custom and non-empty, else the preset vocabulary, else a
// title-cased form of the preset key, else "Ticket".
func (c *TicketTypeConfig) ResolveLabel() string {
	if c.LabelMode == LabelModeCustom && c.CustomLabel != "" {
		return c.CustomLabel
	}
	if c.PresetKey == "" {
		return FallbackTicketLabel
	}
	if label, ok := presetLabels[c.PresetKey]; ok {
		return label
	}
	return titleCaseKey(c.PresetKey)
}

// titleCaseKey turns an unknown preset key like "group_booking" into
// "Group Booking".
func titleCaseKey(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
