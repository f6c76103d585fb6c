package entity

import "testing"

func TestSelector_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		selector Selector
		expect   bool
	}{
		{"zero value", Selector{}, true},
		{"no explicit items", ExplicitSelectors(), true},
		{"all", AllSelectors(), false},
		{"one item", ExplicitSelectors("A713"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.selector.IsEmpty(); got != tt.expect {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.expect)
			}
		})
	}
}
