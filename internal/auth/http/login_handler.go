package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	"github.com/stockpile/stockpile/internal/auth/http/dto"
	authUseCase "github.com/stockpile/stockpile/internal/auth/usecase"
	apperrors "github.com/stockpile/stockpile/internal/errors"
	"github.com/stockpile/stockpile/internal/httputil"
	customValidation "github.com/stockpile/stockpile/internal/validation"
)

// LoginHandler handles HTTP requests for authentication.
type LoginHandler struct {
	loginUseCase authUseCase.LoginUseCase
	logger       *slog.Logger
}

// NewLoginHandler creates a new login handler with required dependencies.
func NewLoginHandler(
	loginUseCase authUseCase.LoginUseCase,
	logger *slog.Logger,
) *LoginHandler {
	return &LoginHandler{
		loginUseCase: loginUseCase,
		logger:       logger,
	}
}

// LoginHandler authenticates a principal and issues a signed access token.
// POST /v1/login - No authentication required (this is the authentication endpoint).
// Returns 201 Created with token, role, and expiry.
func (h *LoginHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	output, err := h.loginUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))
	if err != nil {
		// Unknown usernames and wrong passwords already collapse to the same
		// error; surface its single message instead of the generic 401 body.
		if apperrors.Is(err, authDomain.ErrInvalidCredentials) {
			h.logger.Warn("login rejected", slog.String("client_ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, httputil.ErrorResponse{
				Error:   "unauthorized",
				Message: authDomain.ErrInvalidCredentials.Error(),
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapLoginOutputToResponse(output))
}
