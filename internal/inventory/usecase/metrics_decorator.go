package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stockpile/stockpile/internal/inventory/domain"
	"github.com/stockpile/stockpile/internal/metrics"
)

// itemUseCaseWithMetrics decorates ItemUseCase with metrics instrumentation.
type itemUseCaseWithMetrics struct {
	next    ItemUseCase
	metrics metrics.BusinessMetrics
}

// NewItemUseCaseWithMetrics wraps an ItemUseCase with metrics recording.
func NewItemUseCaseWithMetrics(useCase ItemUseCase, m metrics.BusinessMetrics) ItemUseCase {
	return &itemUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *itemUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "inventory", operation, status)
	d.metrics.RecordDuration(ctx, "inventory", operation, time.Since(start), status)
}

func (d *itemUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateItemInput,
) (*domain.Item, error) {
	start := time.Now()
	item, err := d.next.Create(ctx, input)
	d.record(ctx, "item_create", start, err)
	return item, err
}

func (d *itemUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	start := time.Now()
	item, err := d.next.Get(ctx, id)
	d.record(ctx, "item_get", start, err)
	return item, err
}

func (d *itemUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateItemInput,
) (*domain.Item, error) {
	start := time.Now()
	item, err := d.next.Update(ctx, id, input)
	d.record(ctx, "item_update", start, err)
	return item, err
}

func (d *itemUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	d.record(ctx, "item_delete", start, err)
	return err
}

func (d *itemUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Item, error) {
	start := time.Now()
	items, err := d.next.List(ctx, offset, limit)
	d.record(ctx, "item_list", start, err)
	return items, err
}

func (d *itemUseCaseWithMetrics) ListBelowThreshold(
	ctx context.Context,
	threshold int64,
) ([]*domain.Item, error) {
	start := time.Now()
	items, err := d.next.ListBelowThreshold(ctx, threshold)
	d.record(ctx, "item_low_stock", start, err)
	return items, err
}

func (d *itemUseCaseWithMetrics) SearchByName(
	ctx context.Context,
	name string,
	offset, limit int,
) ([]*domain.Item, error) {
	start := time.Now()
	items, err := d.next.SearchByName(ctx, name, offset, limit)
	d.record(ctx, "item_search", start, err)
	return items, err
}

func (d *itemUseCaseWithMetrics) TotalInventoryValue(ctx context.Context) (float64, error) {
	start := time.Now()
	total, err := d.next.TotalInventoryValue(ctx)
	d.record(ctx, "item_total_value", start, err)
	return total, err
}
