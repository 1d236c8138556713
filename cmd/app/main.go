// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/stockpile/stockpile/cmd/app/commands"
	"github.com/stockpile/stockpile/internal/app"
	"github.com/stockpile/stockpile/internal/config"
)

var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Inventory management API",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-principal",
				Usage: "Create a new principal with a role and hashed password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Unique, case-sensitive username",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Password (omit to be prompted)",
					},
					&cli.StringFlag{
						Name:    "role",
						Aliases: []string{"r"},
						Value:   "USER",
						Usage:   "Role: ADMIN or USER",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCreatePrincipal(
						ctx,
						cmd.String("username"),
						cmd.String("password"),
						cmd.String("role"),
						cmd.String("format"),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// runCreatePrincipal assembles dependencies from the container and delegates
// to the command implementation.
func runCreatePrincipal(ctx context.Context, username, password, role, format string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown container", slog.Any("error", err))
		}
	}()

	principalRepo, err := container.PrincipalRepository()
	if err != nil {
		return fmt.Errorf("failed to get principal repository: %w", err)
	}

	return commands.RunCreatePrincipal(
		ctx,
		principalRepo,
		container.SecretService(),
		logger,
		username,
		password,
		role,
		format,
		commands.DefaultIO(),
	)
}
