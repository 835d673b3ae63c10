// Package catalog holds the static workstation catalog.
package catalog

import (
	"sort"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

const defaultImage = "/Images/Image1.jpg"

// Catalog is an immutable lookup of bookable workstations by ID.
type Catalog struct {
	entries map[int]domain.CatalogEntry
}

// New builds a catalog from entries. Later duplicates replace earlier ones.
func New(entries ...domain.CatalogEntry) *Catalog {
	c := &Catalog{entries: make(map[int]domain.CatalogEntry, len(entries))}
	for _, e := range entries {
		c.entries[e.ID] = e
	}
	return c
}

// Workstations returns the catalog of PCs offered by the space.
func Workstations() *Catalog {
	return New(
		domain.CatalogEntry{ID: 1, Title: "PC 01", Description: "For Daily Use", PricePerHour: 10, ImageURL: defaultImage},
		domain.CatalogEntry{ID: 2, Title: "PC 02", Description: "For Programming Purpose", PricePerHour: 15, ImageURL: defaultImage},
		domain.CatalogEntry{ID: 3, Title: "PC 03", Description: "For Programming Purpose", PricePerHour: 15, ImageURL: defaultImage},
		domain.CatalogEntry{ID: 4, Title: "PC 04", Description: "For Gaming Purpose", PricePerHour: 20, ImageURL: defaultImage},
		domain.CatalogEntry{ID: 5, Title: "PC 05", Description: "For Gaming Purpose", PricePerHour: 20, ImageURL: defaultImage},
	)
}

// Find returns the entry with id. The boolean is false when it is unknown.
func (c *Catalog) Find(id int) (domain.CatalogEntry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// List returns all entries ordered by ID.
func (c *Catalog) List() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
