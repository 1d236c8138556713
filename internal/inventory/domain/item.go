// Package domain contains the core inventory entities and business rules.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item represents a stocked product. TotalValue is derived from Quantity and
// UnitPrice and is recomputed inside every mutator; callers must go through
// NewItem, SetQuantity, SetUnitPrice and Rename instead of assigning fields.
type Item struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Quantity   int64     `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	TotalValue float64   `json:"total_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewItem creates a new Item, validating every field and computing the total value.
func NewItem(name string, quantity int64, unitPrice float64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrIncompleteInput
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now().UTC()
	item := &Item{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(name),
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	item.recompute()
	return item, nil
}

// SetQuantity replaces the quantity. The item is left unchanged on error.
func (i *Item) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	i.recompute()
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// SetUnitPrice replaces the unit price. The item is left unchanged on error.
func (i *Item) SetUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return ErrInvalidPrice
	}
	i.UnitPrice = unitPrice
	i.recompute()
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// Rename replaces the display name. The item is left unchanged on error.
func (i *Item) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrIncompleteInput
	}
	i.Name = strings.TrimSpace(name)
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func (i *Item) recompute() {
	i.TotalValue = float64(i.Quantity) * i.UnitPrice
}
