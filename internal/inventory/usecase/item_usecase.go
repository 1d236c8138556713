package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/stockpile/stockpile/internal/database"
	"github.com/stockpile/stockpile/internal/inventory/domain"
)

// itemUseCase implements the ItemUseCase interface.
type itemUseCase struct {
	txManager database.TxManager
	itemRepo  ItemRepository
	logger    *slog.Logger
}

// NewItemUseCase creates a new ItemUseCase.
func NewItemUseCase(
	txManager database.TxManager,
	itemRepo ItemRepository,
	logger *slog.Logger,
) ItemUseCase {
	return &itemUseCase{
		txManager: txManager,
		itemRepo:  itemRepo,
		logger:    logger,
	}
}

// Create validates the input and persists a new item. Every field is required.
func (uc *itemUseCase) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	if strings.TrimSpace(input.Name) == "" || input.Quantity == nil || input.UnitPrice == nil {
		return nil, domain.ErrIncompleteInput
	}

	item, err := domain.NewItem(input.Name, *input.Quantity, *input.UnitPrice)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	uc.logger.Info("inventory item created",
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name))

	return item, nil
}

// Get retrieves an item by ID.
func (uc *itemUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// Update applies a partial update to an item. The read-modify-write runs
// inside a transaction so concurrent updates cannot interleave.
func (uc *itemUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateItemInput,
) (*domain.Item, error) {
	var updated *domain.Item

	err := uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		item, err := uc.itemRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			if err := item.Rename(*input.Name); err != nil {
				return err
			}
		}
		if input.Quantity != nil {
			if err := item.SetQuantity(*input.Quantity); err != nil {
				return err
			}
		}
		if input.UnitPrice != nil {
			if err := item.SetUnitPrice(*input.UnitPrice); err != nil {
				return err
			}
		}

		if err := uc.itemRepo.Update(txCtx, item); err != nil {
			return err
		}

		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("inventory item updated", slog.String("item_id", id.String()))

	return updated, nil
}

// Delete removes an item by ID.
func (uc *itemUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("inventory item deleted", slog.String("item_id", id.String()))

	return nil
}

// List returns items ordered by name.
func (uc *itemUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Item, error) {
	return uc.itemRepo.ListOrderedByName(ctx, offset, limit)
}

// ListBelowThreshold returns items whose quantity is strictly below the threshold.
func (uc *itemUseCase) ListBelowThreshold(
	ctx context.Context,
	threshold int64,
) ([]*domain.Item, error) {
	if threshold < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return uc.itemRepo.FindBelowThreshold(ctx, threshold)
}

// SearchByName returns items whose name contains the given fragment.
func (uc *itemUseCase) SearchByName(
	ctx context.Context,
	name string,
	offset, limit int,
) ([]*domain.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrIncompleteInput
	}
	return uc.itemRepo.SearchByName(ctx, name, offset, limit)
}

// TotalInventoryValue returns the sum of every item's total value. An empty
// inventory sums to zero.
func (uc *itemUseCase) TotalInventoryValue(ctx context.Context) (float64, error) {
	return uc.itemRepo.SumOfTotalValue(ctx)
}
