package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SelectorDTO is the JSON form of a selector: the string "all" or a list of selectors.
// A single other string is read as a one-item list.
type SelectorDTO struct {
	All   bool
	Items []string
	set   bool
}

func (s *SelectorDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		s.set = true
		if strings.EqualFold(strings.TrimSpace(value), "all") {
			s.All = true
			return nil
		}
		s.Items = []string{value}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: selectors must be \"all\" or a list of strings", ErrValidation)
	}
	s.set = true
	s.Items = items
	return nil
}

func (s SelectorDTO) MarshalJSON() ([]byte, error) {
	if s.All {
		return json.Marshal("all")
	}
	if s.Items == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s.Items)
}

// IsSet reports whether the field was present and not null
func (s SelectorDTO) IsSet() bool {
	return s.set || s.All || s.Items != nil
}

// AttributeSelectorRequest is the body of POST /selectors/attributes
type AttributeSelectorRequest struct {
	Frequency   string      `json:"frequency" example:"h"`
	StationType string      `json:"stationType" example:"automatic"`
	Selectors   SelectorDTO `json:"selectors" swaggertype:"array,string" example:"rain,T_mean"`
}

// StationSelectorRequest is the body of POST /selectors/stations
type StationSelectorRequest struct {
	StationType string      `json:"stationType" example:"automatic"`
	Region      string      `json:"region" example:"SU"`
	Selectors   SelectorDTO `json:"selectors" swaggertype:"array,string" example:"A713,Sao Paulo SP"`
}

// ResolvedCodesResponse lists the codes a selector resolved to
type ResolvedCodesResponse struct {
	Codes []string `json:"codes"`
}

// RequisitionRequest is the body of the /requisitions endpoints
type RequisitionRequest struct {
	Email       string      `json:"email" example:"someone@example.com"`
	Frequency   string      `json:"frequency" example:"h"`
	StationType string      `json:"stationType" example:"automatic"`
	Region      string      `json:"region,omitempty" example:"SU"`
	Attributes  SelectorDTO `json:"attributes" swaggertype:"array,string" example:"rain,T_mean"`
	Stations    SelectorDTO `json:"stations" swaggertype:"array,string" example:"A713"`
	StartDate   string      `json:"startDate" example:"2023-01-01"`
	EndDate     string      `json:"endDate" example:"2023-01-31"`
	Decimal     string      `json:"decimal,omitempty" example:"."`
}

// EvictResponse reports how many cache entries were dropped
type EvictResponse struct {
	Removed int `json:"removed"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
