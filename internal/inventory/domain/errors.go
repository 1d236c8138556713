package domain

import (
	apperrors "github.com/stockpile/stockpile/internal/errors"
)

var (
	// ErrItemNotFound is returned when an inventory item does not exist.
	ErrItemNotFound = apperrors.Wrap(apperrors.ErrNotFound, "inventory item not found")
	// ErrItemAlreadyExists is returned when an item with the same name already exists.
	ErrItemAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "inventory item already exists")
	// ErrIncompleteInput is returned when a required field is missing on creation.
	ErrIncompleteInput = apperrors.Wrap(apperrors.ErrInvalidInput, "name, quantity and unit price are required")
	// ErrInvalidQuantity is returned when the quantity is negative.
	ErrInvalidQuantity = apperrors.Wrap(apperrors.ErrInvalidInput, "quantity must be zero or greater")
	// ErrInvalidPrice is returned when the unit price is zero or negative.
	ErrInvalidPrice = apperrors.Wrap(apperrors.ErrInvalidInput, "unit price must be greater than zero")
)
