package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for bad frequency, station type, region, decimal or email
	// arguments. It is always raised before any network call.
	ErrValidation = errors.New("validation error")
	// ErrRemote is returned when the catalog service fails or answers with an unreadable body.
	ErrRemote = errors.New("remote error")
	// ErrUnresolvedSelector is returned when a selector matches no catalog entry.
	ErrUnresolvedSelector = errors.New("unresolved selector")
	// ErrInvalidSelectorFormat is returned when a station selector is neither a code nor "City ST".
	ErrInvalidSelectorFormat = errors.New("invalid selector format")
	// ErrInvalidDateFormat is returned when a date string is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrQueueDisabled is returned by asynchronous submission when no queue is configured.
	ErrQueueDisabled = errors.New("requisition queue disabled")
)

// Catalog names used by SelectorError.
const (
	CatalogAttributes = "attributes"
	CatalogStations   = "stations"
)

// SelectorError names the selector that stopped a resolution.
type SelectorError struct {
	// Kind is ErrUnresolvedSelector or ErrInvalidSelectorFormat
	Kind     error
	Catalog  string
	Selector string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("%s: %s selector %q", e.Kind, e.Catalog, e.Selector)
}

func (e *SelectorError) Unwrap() error {
	return e.Kind
}

// NewUnresolvedSelector creates a SelectorError of kind ErrUnresolvedSelector.
func NewUnresolvedSelector(catalog, selector string) *SelectorError {
	return &SelectorError{Kind: ErrUnresolvedSelector, Catalog: catalog, Selector: selector}
}

// NewInvalidSelectorFormat creates a SelectorError of kind ErrInvalidSelectorFormat.
func NewInvalidSelectorFormat(catalog, selector string) *SelectorError {
	return &SelectorError{Kind: ErrInvalidSelectorFormat, Catalog: catalog, Selector: selector}
}
