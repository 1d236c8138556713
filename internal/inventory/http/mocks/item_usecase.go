// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/stockpile/stockpile/internal/inventory/domain"
	inventoryUseCase "github.com/stockpile/stockpile/internal/inventory/usecase"
)

// MockItemUseCase is a mock implementation of ItemUseCase for testing.
type MockItemUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ItemUseCase.
func (m *MockItemUseCase) Create(
	ctx context.Context,
	input inventoryUseCase.CreateItemInput,
) (*domain.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// Get mocks the Get method of ItemUseCase.
func (m *MockItemUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// Update mocks the Update method of ItemUseCase.
func (m *MockItemUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input inventoryUseCase.UpdateItemInput,
) (*domain.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// Delete mocks the Delete method of ItemUseCase.
func (m *MockItemUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// List mocks the List method of ItemUseCase.
func (m *MockItemUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Item, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

// ListBelowThreshold mocks the ListBelowThreshold method of ItemUseCase.
func (m *MockItemUseCase) ListBelowThreshold(
	ctx context.Context,
	threshold int64,
) ([]*domain.Item, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

// SearchByName mocks the SearchByName method of ItemUseCase.
func (m *MockItemUseCase) SearchByName(
	ctx context.Context,
	name string,
	offset, limit int,
) ([]*domain.Item, error) {
	args := m.Called(ctx, name, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

// TotalInventoryValue mocks the TotalInventoryValue method of ItemUseCase.
func (m *MockItemUseCase) TotalInventoryValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
