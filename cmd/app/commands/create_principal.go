package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	authService "github.com/stockpile/stockpile/internal/auth/service"
	authUseCase "github.com/stockpile/stockpile/internal/auth/usecase"
)

// createPrincipalOutput is the shape written to the user after creation.
type createPrincipalOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RunCreatePrincipal creates a new principal with a hashed password. This is
// the only path that registers credentials; the HTTP API has no sign-up
// endpoint. When password is empty the user is prompted for it.
//
// Requirements: Database must be migrated and accessible.
func RunCreatePrincipal(
	ctx context.Context,
	principalRepo authUseCase.PrincipalRepository,
	secretService authService.SecretService,
	logger *slog.Logger,
	username string,
	password string,
	role string,
	format string,
	io IOTuple,
) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}

	principalRole := authDomain.Role(strings.ToUpper(strings.TrimSpace(role)))
	if !principalRole.Valid() {
		return fmt.Errorf("invalid role: %s (valid options: ADMIN, USER)", role)
	}

	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password is required")
	}

	logger.Info("creating new principal",
		slog.String("username", username),
		slog.String("role", string(principalRole)),
	)

	hashedPassword, err := secretService.HashSecret(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	principal := &authDomain.Principal{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         principalRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := principalRepo.Create(ctx, principal); err != nil {
		return fmt.Errorf("failed to create principal: %w", err)
	}

	output := createPrincipalOutput{
		ID:       principal.ID.String(),
		Username: principal.Username,
		Role:     string(principal.Role),
	}

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		fmt.Fprintf(io.Writer, "Principal created\n")
		fmt.Fprintf(io.Writer, "  ID:       %s\n", output.ID)
		fmt.Fprintf(io.Writer, "  Username: %s\n", output.Username)
		fmt.Fprintf(io.Writer, "  Role:     %s\n", output.Role)
	}

	logger.Info("principal created successfully",
		slog.String("principal_id", output.ID),
		slog.String("username", output.Username),
	)

	return nil
}

// promptForPassword reads the password from the interactive reader.
func promptForPassword(io IOTuple) (string, error) {
	fmt.Fprint(io.Writer, "Password: ")

	reader := bufio.NewReader(io.Reader)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
