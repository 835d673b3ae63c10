package domain

import "math"

// CatalogEntry describes a bookable workstation. Entries are reference data
// and are never created or mutated by the booking workflow.
type CatalogEntry struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PricePerHour int64  `json:"pricePerHour"`
	ImageURL     string `json:"imageUrl"`
}

// CostFor returns the total cost of holding the entry for hours. Callers must
// keep hours within MaxHours.
func (e CatalogEntry) CostFor(hours int) int64 {
	return e.PricePerHour * int64(hours)
}

// MaxHours is the longest duration whose cost still fits in an int64.
func (e CatalogEntry) MaxHours() int64 {
	if e.PricePerHour <= 0 {
		return math.MaxInt64
	}
	return math.MaxInt64 / e.PricePerHour
}
