// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authUseCase "github.com/stockpile/stockpile/internal/auth/usecase"
	customValidation "github.com/stockpile/stockpile/internal/validation"
)

// LoginRequest contains the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// ToLoginInput converts the request to a use case input.
func ToLoginInput(r LoginRequest) authUseCase.LoginInput {
	return authUseCase.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}
