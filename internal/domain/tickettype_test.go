package domain

import "testing"

func TestResolveLabel(t *testing.T) {
	tests := []struct {
		name   string
		config TicketTypeConfig
		want   string
	}{
		{
			name:   "custom label",
			config: TicketTypeConfig{LabelMode: LabelModeCustom, CustomLabel: "Early Bird Special"},
			want:   "Early Bird Special",
		},
		{
			name:   "custom mode with empty label falls back to preset",
			config: TicketTypeConfig{LabelMode: LabelModeCustom, PresetKey: "vip"},
			want:   "VIP",
		},
		{
			name:   "preset vocabulary",
			config: TicketTypeConfig{LabelMode: LabelModePreset, PresetKey: "full_price"},
			want:   "Full Price",
		},
		{
			name:   "unknown preset is title-cased",
			config: TicketTypeConfig{LabelMode: LabelModePreset, PresetKey: "group_booking"},
			want:   "Group Booking",
		},
		{
			name:   "no label source",
			config: TicketTypeConfig{LabelMode: LabelModePreset},
			want:   "Ticket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.ResolveLabel(); got != tt.want {
				t.Errorf("ResolveLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
