package domain

import (
	"context"
	"time"
)

// Equipment is a rentable construction equipment record. The assistant only
// reads equipment; all writes happen in the commerce backend that owns the
// table.
type Equipment struct {
	ID             int64
	Name           string
	Price          float64
	ImageURL       *string
	Description    *string
	Category       *string
	Stock          int
	AvailableStock *int
	Manufacturer   *string
	ModelNumber    *string
	WarrantyMonths int
	Weight         float64
	Dimensions     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AvailableUnits returns the number of units currently rentable:
// available_stock when the column is populated, the gross stock otherwise.
func (e Equipment) AvailableUnits() int {
	if e.AvailableStock != nil {
		return *e.AvailableStock
	}
	return e.Stock
}

// AggregateStock sums the rentable units across a set of equipment.
func AggregateStock(equipments []Equipment) int {
	total := 0
	for _, e := range equipments {
		total += e.AvailableUnits()
	}
	return total
}

// EquipmentRepository is the read-only query surface over the equipment store.
type EquipmentRepository interface {
	// SearchByName returns equipment whose name contains the query,
	// case-insensitively, capped at limit. An empty query matches everything.
	SearchByName(ctx context.Context, query string, limit int) ([]Equipment, error)
	// ListAll returns up to limit equipment rows ordered by name.
	// A non-positive limit returns the full set.
	ListAll(ctx context.Context, limit int) ([]Equipment, error)
	// GetByID returns the equipment with the given id and whether it exists.
	GetByID(ctx context.Context, id int64) (Equipment, bool, error)
}
