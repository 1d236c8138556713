package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/stockpile/stockpile/internal/database"
	apperrors "github.com/stockpile/stockpile/internal/errors"
	"github.com/stockpile/stockpile/internal/inventory/domain"
)

// MySQLItemRepository implements item persistence for MySQL databases.
type MySQLItemRepository struct {
	db *sql.DB
}

// NewMySQLItemRepository creates a new MySQLItemRepository.
func NewMySQLItemRepository(db *sql.DB) *MySQLItemRepository {
	return &MySQLItemRepository{
		db: db,
	}
}

// Create inserts a new item.
func (r *MySQLItemRepository) Create(ctx context.Context, item *domain.Item) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO items (id, name, quantity, unit_price, total_value, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Quantity,
		item.UnitPrice,
		item.TotalValue,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrItemAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create item")
	}
	return nil
}

// GetByID retrieves an item by its ID.
func (r *MySQLItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	item, err := scanItem(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get item by id")
	}
	return item, nil
}

// Update persists the current state of an item.
func (r *MySQLItemRepository) Update(ctx context.Context, item *domain.Item) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE items
			  SET name = ?, quantity = ?, unit_price = ?, total_value = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		item.Name,
		item.Quantity,
		item.UnitPrice,
		item.TotalValue,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrItemAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update item")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete removes an item by its ID.
func (r *MySQLItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete item")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ListOrderedByName lists items ordered by name ascending.
func (r *MySQLItemRepository) ListOrderedByName(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list items")
	}
	return collectItems(rows)
}

// FindBelowThreshold lists items whose quantity is strictly below the threshold.
func (r *MySQLItemRepository) FindBelowThreshold(
	ctx context.Context,
	threshold int64,
) ([]*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity < ? ORDER BY name ASC`

	rows, err := querier.QueryContext(ctx, query, threshold)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find items below threshold")
	}
	return collectItems(rows)
}

// SearchByName lists items whose name contains the fragment, case-insensitive.
func (r *MySQLItemRepository) SearchByName(
	ctx context.Context,
	name string,
	offset, limit int,
) ([]*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items
			  WHERE LOWER(name) LIKE LOWER(?) ORDER BY name ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, "%"+escapeLike(name)+"%", limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search items by name")
	}
	return collectItems(rows)
}

// SumOfTotalValue returns the sum of total_value over every item. An empty
// table sums to zero.
func (r *MySQLItemRepository) SumOfTotalValue(ctx context.Context) (float64, error) {
	querier := database.GetTx(ctx, r.db)

	var sum float64
	err := querier.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_value), 0) FROM items`).Scan(&sum)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to sum item total values")
	}
	return sum, nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry error (1062).
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "error 1062") || strings.Contains(errMsg, "duplicate entry")
}
