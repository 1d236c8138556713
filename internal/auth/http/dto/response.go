// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authUseCase "github.com/stockpile/stockpile/internal/auth/usecase"
)

// LoginResponse contains the result of a successful login.
// SECURITY: The token is a bearer credential and must be transmitted over TLS.
type LoginResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapLoginOutputToResponse converts a use case output to an API response.
func MapLoginOutputToResponse(output *authUseCase.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.Token,
		Role:      string(output.Role),
		ExpiresAt: output.ExpiresAt,
	}
}
