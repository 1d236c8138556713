// Package dto provides data transfer objects for inventory HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/stockpile/stockpile/internal/inventory/usecase"
	appValidation "github.com/stockpile/stockpile/internal/validation"
)

// CreateItemRequest contains the parameters for creating an inventory item.
// Pointer fields distinguish an absent value from a zero value.
type CreateItemRequest struct {
	Name      string   `json:"name"`
	Quantity  *int64   `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// Validate checks if the create item request is valid.
func (r *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Quantity,
			validation.NotNil.Error("quantity is required"),
		),
		validation.Field(&r.UnitPrice,
			validation.NotNil.Error("unit_price is required"),
		),
	)
}

// ToCreateItemInput converts the request to a use case input.
func (r *CreateItemRequest) ToCreateItemInput() usecase.CreateItemInput {
	return usecase.CreateItemInput{
		Name:      r.Name,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

// UpdateItemRequest contains the parameters for a partial item update. At
// least one field must be present.
type UpdateItemRequest struct {
	Name      *string  `json:"name"`
	Quantity  *int64   `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

// Validate checks if the update item request is valid.
func (r *UpdateItemRequest) Validate() error {
	if r.Name == nil && r.Quantity == nil && r.UnitPrice == nil {
		return validation.NewError(
			"validation_empty_update",
			"at least one of name, quantity or unit_price is required",
		)
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				appValidation.NotBlank,
				validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
			),
		),
	)
}

// ToUpdateItemInput converts the request to a use case input.
func (r *UpdateItemRequest) ToUpdateItemInput() usecase.UpdateItemInput {
	return usecase.UpdateItemInput{
		Name:      r.Name,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}
