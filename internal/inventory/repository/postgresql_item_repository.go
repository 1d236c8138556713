// Package repository implements data persistence for inventory items.
// Repositories support both PostgreSQL and MySQL over database/sql.
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

const itemColumns = "id, name, quantity, unit_price, total_value, created_at, updated_at"

// PostgreSQLItemRepository implements item persistence for PostgreSQL databases.
type PostgreSQLItemRepository struct {
	db *sql.DB
}

// NewPostgreSQLItemRepository creates a new PostgreSQLItemRepository.
func NewPostgreSQLItemRepository(db *sql.DB) *PostgreSQLItemRepository {
	return &PostgreSQLItemRepository{
		db: db,
	}
}

// Create inserts a new item.
func (r *PostgreSQLItemRepository) Create(ctx context.Context, item *domain.Item) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO items (id, name, quantity, unit_price, total_value, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

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
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrItemAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create item")
	}
	return nil
}

// GetByID retrieves an item by its ID.
func (r *PostgreSQLItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

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
func (r *PostgreSQLItemRepository) Update(ctx context.Context, item *domain.Item) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE items
			  SET name = $1, quantity = $2, unit_price = $3, total_value = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(ctx, query,
		item.Name,
		item.Quantity,
		item.UnitPrice,
		item.TotalValue,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
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
func (r *PostgreSQLItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
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
func (r *PostgreSQLItemRepository) ListOrderedByName(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name ASC OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list items")
	}
	return collectItems(rows)
}

// FindBelowThreshold lists items whose quantity is strictly below the threshold.
func (r *PostgreSQLItemRepository) FindBelowThreshold(
	ctx context.Context,
	threshold int64,
) ([]*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity < $1 ORDER BY name ASC`

	rows, err := querier.QueryContext(ctx, query, threshold)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find items below threshold")
	}
	return collectItems(rows)
}

// SearchByName lists items whose name contains the fragment, case-insensitive.
func (r *PostgreSQLItemRepository) SearchByName(
	ctx context.Context,
	name string,
	offset, limit int,
) ([]*domain.Item, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM items
			  WHERE name ILIKE $1 ORDER BY name ASC OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, "%"+escapeLike(name)+"%", offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search items by name")
	}
	return collectItems(rows)
}

// SumOfTotalValue returns the sum of total_value over every item. An empty
// table sums to zero.
func (r *PostgreSQLItemRepository) SumOfTotalValue(ctx context.Context) (float64, error) {
	querier := database.GetTx(ctx, r.db)

	var sum float64
	err := querier.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_value), 0) FROM items`).Scan(&sum)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to sum item total values")
	}
	return sum, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&item.UnitPrice,
		&item.TotalValue,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*domain.Item, error) {
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate items")
	}
	return items, nil
}

// escapeLike escapes LIKE metacharacters in a user-supplied fragment.
func escapeLike(fragment string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(fragment)
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
