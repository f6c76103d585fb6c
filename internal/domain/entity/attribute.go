package entity

// Attribute is a measurable quantity of the attribute catalog.
type Attribute struct {
	Code        string    `json:"code"`
	Frequency   Frequency `json:"frequency"`
	Periodicity string    `json:"periodicity"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	Class       string    `json:"class"`
	// Alias comes from the alias table, never from the catalog service
	Alias string `json:"alias,omitempty"`
}
