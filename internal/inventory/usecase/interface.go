// Package usecase implements the inventory business logic and orchestrates
// item domain operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/stockpile/stockpile/internal/inventory/domain"
)

// CreateItemInput contains the input data for item creation. Pointer fields
// distinguish an absent value from a zero value.
type CreateItemInput struct {
	Name      string   `json:"name"`
	Quantity  *int64   `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// UpdateItemInput contains the input data for a partial item update. Nil
// fields are left untouched.
type UpdateItemInput struct {
	Name      *string  `json:"name"`
	Quantity  *int64   `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// ItemRepository defines the interface for item persistence operations.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListOrderedByName(ctx context.Context, offset, limit int) ([]*domain.Item, error)
	FindBelowThreshold(ctx context.Context, threshold int64) ([]*domain.Item, error)
	SearchByName(ctx context.Context, name string, offset, limit int) ([]*domain.Item, error)
	SumOfTotalValue(ctx context.Context) (float64, error)
}

// ItemUseCase defines the interface for inventory business logic.
type ItemUseCase interface {
	Create(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*domain.Item, error)
	ListBelowThreshold(ctx context.Context, threshold int64) ([]*domain.Item, error)
	SearchByName(ctx context.Context, name string, offset, limit int) ([]*domain.Item, error)
	TotalInventoryValue(ctx context.Context) (float64, error)
}
