package i18n

import "testing"

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en")
	data := map[string]any{"Start": "10:00", "End": "11:30", "Date": "7/15/2024"}

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{
			name: "english conflict",
			key:  "errors.event_time_conflict",
			data: data,
			want: "Event time conflict: You already have an event scheduled from 10:00 to 11:30 on 7/15/2024. Please choose a different time.",
		},
		{name: "french", locale: "fr", key: "errors.event_not_found", want: "Événement introuvable."},
		{name: "accept-language header", locale: "fr-CA,fr;q=0.9,en;q=0.8", key: "errors.forbidden", want: "Seul le créateur ou un administrateur peut effectuer cette action."},
		{name: "unknown locale falls back", locale: "de", key: "errors.user_not_found", want: "User not found."},
		{name: "unknown key", key: "errors.nope", want: "errors.nope"},
		{name: "empty key", key: "", want: ""},
	}

	for _, tt := range tests {
		if got := tr.T(tt.locale, tt.key, tt.data); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
