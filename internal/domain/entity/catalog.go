package entity

import (
	"fmt"
	"strings"

	"bdmep-api/internal/domain/model"
)

// Frequency is the temporal aggregation of the requested series.
type Frequency string

const (
	Hourly  Frequency = "h"
	Daily   Frequency = "d"
	Monthly Frequency = "m"
)

// Frequencies lists every supported frequency.
var Frequencies = []Frequency{Hourly, Daily, Monthly}

// ParseFrequency accepts h/d/m or hourly/daily/monthly, case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hourly":
		return Hourly, nil
	case "d", "daily":
		return Daily, nil
	case "m", "monthly":
		return Monthly, nil
	}
	return "", fmt.Errorf("%w: invalid frequency %q, expected one of h, d, m", model.ErrValidation, s)
}

// Code is the upper case letter used on the wire (H, D, M).
func (f Frequency) Code() string {
	return strings.ToUpper(string(f))
}

// StationType distinguishes automatic from conventional stations.
type StationType string

const (
	Automatic    StationType = "automatic"
	Conventional StationType = "conventional"
)

// StationTypes lists every supported station type.
var StationTypes = []StationType{Automatic, Conventional}

// ParseStationType accepts automatic or conventional, case-insensitively.
func ParseStationType(s string) (StationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Automatic):
		return Automatic, nil
	case string(Conventional):
		return Conventional, nil
	}
	return "", fmt.Errorf("%w: invalid station type %q, expected automatic or conventional", model.ErrValidation, s)
}

// AttributePath is the path fragment of the attribute catalog.
func (t StationType) AttributePath() string {
	if t == Automatic {
		return "A301"
	}
	return "83377"
}

// Code is the single letter used in the station catalog path and in the payload.
func (t StationType) Code() string {
	if t == Automatic {
		return "T"
	}
	return "M"
}

// Region is one of the five national regions of the station catalog.
type Region string

const (
	North     Region = "N"
	Northeast Region = "NO"
	South     Region = "S"
	Southeast Region = "SU"
	Midwest   Region = "CO"
)

// Regions holds every region in the order they are queried.
var Regions = []Region{North, Northeast, South, Southeast, Midwest}

// ParseRegion accepts a region code case-insensitively. An empty input yields the empty
// region, meaning every region.
func ParseRegion(s string) (Region, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, r := range Regions {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: invalid region %q, expected one of N, NO, S, SU, CO", model.ErrValidation, s)
}
