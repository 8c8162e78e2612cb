package models

// Product is a catalogue entry. The catalogue is read-only at runtime;
// products are served from the configured catalogue source, not the store.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
