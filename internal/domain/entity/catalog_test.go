package entity

import (
	"errors"
	"testing"
	"time"

	"bdmep-api/internal/domain/model"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		input  string
		expect Frequency
		code   string
	}{
		{"h", Hourly, "H"},
		{"D", Daily, "D"},
		{"monthly", Monthly, "M"},
		{" Hourly ", Hourly, "H"},
	}
	for _, tt := range tests {
		got, err := ParseFrequency(tt.input)
		if err != nil {
			t.Fatalf("ParseFrequency(%q): %v", tt.input, err)
		}
		if got != tt.expect || got.Code() != tt.code {
			t.Errorf("ParseFrequency(%q) = %s/%s, want %s/%s", tt.input, got, got.Code(), tt.expect, tt.code)
		}
	}

	if _, err := ParseFrequency("weekly"); !errors.Is(err, model.ErrValidation) {
		t.Errorf("ParseFrequency(weekly) err = %v, want ErrValidation", err)
	}
}

func TestParseStationType(t *testing.T) {
	st, err := ParseStationType("Automatic")
	if err != nil || st != Automatic {
		t.Fatalf("ParseStationType(Automatic) = %s, %v", st, err)
	}
	if st.AttributePath() != "A301" || st.Code() != "T" {
		t.Errorf("automatic fragments = %s, %s", st.AttributePath(), st.Code())
	}
	if Conventional.AttributePath() != "83377" || Conventional.Code() != "M" {
		t.Errorf("conventional fragments = %s, %s", Conventional.AttributePath(), Conventional.Code())
	}
	if _, err := ParseStationType("manual"); !errors.Is(err, model.ErrValidation) {
		t.Errorf("ParseStationType(manual) err = %v, want ErrValidation", err)
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		expect  Region
		wantErr bool
	}{
		{"", "", false},
		{"su", Southeast, false},
		{"NO", Northeast, false},
		{"co", Midwest, false},
		{"SE", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseRegion(%q) err = %v", tt.input, err)
		}
		if tt.wantErr && !errors.Is(err, model.ErrValidation) {
			t.Errorf("ParseRegion(%q) err = %v, want ErrValidation", tt.input, err)
		}
		if got != tt.expect {
			t.Errorf("ParseRegion(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestRegions_TableOrder(t *testing.T) {
	want := []Region{"N", "NO", "S", "SU", "CO"}
	for i, r := range Regions {
		if r != want[i] {
			t.Errorf("Regions[%d] = %s, want %s", i, r, want[i])
		}
	}
}

func TestDateInput_Format(t *testing.T) {
	tests := []struct {
		name    string
		input   DateInput
		expect  string
		wantErr bool
	}{
		{"time value", DateFromTime(time.Date(2020, 12, 1, 23, 59, 0, 0, time.UTC)), "2020-12-01", false},
		{"valid string", DateFromString("2021-02-28"), "2021-02-28", false},
		{"impossible date", DateFromString("2021-02-30"), "", true},
		{"wrong layout", DateFromString("01/12/2020"), "", true},
		{"empty", DateFromString(""), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Format()
			if tt.wantErr {
				if !errors.Is(err, model.ErrInvalidDateFormat) {
					t.Fatalf("err = %v, want ErrInvalidDateFormat", err)
				}
				return
			}
			if err != nil || got != tt.expect {
				t.Errorf("Format() = %q, %v, want %q", got, err, tt.expect)
			}
		})
	}
}

func TestSelector(t *testing.T) {
	items := []string{"rain", "T_mean"}
	s := ExplicitSelectors(items...)
	items[0] = "changed"

	if s.IsAll() {
		t.Error("explicit selector reported as all")
	}
	if got := s.Items(); len(got) != 2 || got[0] != "rain" {
		t.Errorf("Items() = %v", got)
	}
	if !AllSelectors().IsAll() || len(AllSelectors().Items()) != 0 {
		t.Error("AllSelectors must be all with no items")
	}
}
