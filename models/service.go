package models

// Service represents a cleaning service offered in the catalog.
// Catalog entries are static reference data, not user-mutable.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"` // e.g., "Approx. 2-3 hours"
}
