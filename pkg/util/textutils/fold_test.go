package textutils

import "testing"

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"São José do Rio Preto", "Sao Jose do Rio Preto"},
		{"Três Lagoas", "Tres Lagoas"},
		{"BRASÍLIA", "BRASILIA"},
		{"Coxim", "Coxim"},
		{"Içara", "Icara"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripDiacritics(tt.in); got != tt.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldUpper(t *testing.T) {
	if got := FoldUpper("  São Paulo "); got != "SAO PAULO" {
		t.Errorf("FoldUpper() = %q", got)
	}
}
