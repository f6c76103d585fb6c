package entity

// Selector is either every catalog entry or an explicit list of user selectors.
type Selector struct {
	all   bool
	items []string
}

// AllSelectors selects every entry of the catalog, in catalog order.
func AllSelectors() Selector {
	return Selector{all: true}
}

// ExplicitSelectors selects the given items, resolved one by one.
func ExplicitSelectors(items ...string) Selector {
	return Selector{items: append([]string(nil), items...)}
}

// IsAll reports whether the selector bypasses per-item resolution.
func (s Selector) IsAll() bool {
	return s.all
}

// Items returns a copy of the explicit items. It is empty for AllSelectors.
func (s Selector) Items() []string {
	return append([]string(nil), s.items...)
}

// IsEmpty reports whether the selector selects nothing, as the zero Selector does.
func (s Selector) IsEmpty() bool {
	return !s.all && len(s.items) == 0
}
