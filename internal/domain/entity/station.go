package entity

import "time"

// Station is a measurement site of the station catalog.
type Station struct {
	Code           string      `json:"code"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	Type           StationType `json:"stationType"`
	Kind           string      `json:"kind"`
	Region         string      `json:"region"`
	Status         string      `json:"status"`
	Entity         string      `json:"entity"`
	WSI            string      `json:"wsi"`
	OSCAR          string      `json:"oscar"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Altitude       float64     `json:"altitude"`
	OperationStart time.Time   `json:"operationStart"`
	OperationEnd   *time.Time  `json:"operationEnd,omitempty"`
}

// Operating reports whether the station has no operation end date.
func (s Station) Operating() bool {
	return s.OperationEnd == nil
}
