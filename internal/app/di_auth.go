package app

import (
	"fmt"

	authRepository "github.com/stockpile/stockpile/internal/auth/repository"
	authService "github.com/stockpile/stockpile/internal/auth/service"
	authUseCase "github.com/stockpile/stockpile/internal/auth/usecase"
)

// TokenCodec returns the token codec used to sign and verify access tokens.
// Initialization fails when the signing key is missing or too short.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = authService.NewTokenCodec(
			[]byte(c.config.AuthSigningKey),
			c.config.AuthTokenTTL,
		)
		if err != nil {
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// SecretService returns the password hashing service.
func (c *Container) SecretService() authService.SecretService {
	c.secretServiceInit.Do(func() {
		c.secretService = authService.NewSecretService()
	})
	return c.secretService
}

// PrincipalRepository returns the principal repository based on database driver.
func (c *Container) PrincipalRepository() (authUseCase.PrincipalRepository, error) {
	var err error
	c.principalRepoInit.Do(func() {
		c.principalRepo, err = c.initPrincipalRepository()
		if err != nil {
			c.initErrors["principalRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["principalRepo"]; exists {
		return nil, storedErr
	}
	return c.principalRepo, nil
}

// LoginUseCase returns the login use case.
func (c *Container) LoginUseCase() (authUseCase.LoginUseCase, error) {
	var err error
	c.loginUseCaseInit.Do(func() {
		c.loginUseCase, err = c.initLoginUseCase()
		if err != nil {
			c.initErrors["loginUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["loginUseCase"]; exists {
		return nil, storedErr
	}
	return c.loginUseCase, nil
}

// initPrincipalRepository creates the principal repository instance.
func (c *Container) initPrincipalRepository() (authUseCase.PrincipalRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for principal repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLPrincipalRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLPrincipalRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initLoginUseCase creates the login use case with all its dependencies.
func (c *Container) initLoginUseCase() (authUseCase.LoginUseCase, error) {
	principalRepo, err := c.PrincipalRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get principal repository for login use case: %w", err)
	}

	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for login use case: %w", err)
	}

	return authUseCase.NewLoginUseCase(
		principalRepo,
		c.SecretService(),
		tokenCodec,
		c.Logger(),
	), nil
}
