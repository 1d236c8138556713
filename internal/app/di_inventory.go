package app

import (
	"fmt"

	inventoryRepository "github.com/stockpile/stockpile/internal/inventory/repository"
	inventoryUseCase "github.com/stockpile/stockpile/internal/inventory/usecase"
)

// ItemRepository returns the item repository based on database driver.
func (c *Container) ItemRepository() (inventoryUseCase.ItemRepository, error) {
	var err error
	c.itemRepoInit.Do(func() {
		c.itemRepo, err = c.initItemRepository()
		if err != nil {
			c.initErrors["itemRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["itemRepo"]; exists {
		return nil, storedErr
	}
	return c.itemRepo, nil
}

// ItemUseCase returns the item use case, instrumented with business metrics.
func (c *Container) ItemUseCase() (inventoryUseCase.ItemUseCase, error) {
	var err error
	c.itemUseCaseInit.Do(func() {
		c.itemUseCase, err = c.initItemUseCase()
		if err != nil {
			c.initErrors["itemUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["itemUseCase"]; exists {
		return nil, storedErr
	}
	return c.itemUseCase, nil
}

// initItemRepository creates the item repository instance.
func (c *Container) initItemRepository() (inventoryUseCase.ItemRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for item repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return inventoryRepository.NewMySQLItemRepository(db), nil
	case "postgres":
		return inventoryRepository.NewPostgreSQLItemRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initItemUseCase creates the item use case with all its dependencies.
func (c *Container) initItemUseCase() (inventoryUseCase.ItemUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for item use case: %w", err)
	}

	itemRepo, err := c.ItemRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get item repository for item use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for item use case: %w", err)
	}

	useCase := inventoryUseCase.NewItemUseCase(txManager, itemRepo, c.Logger())

	return inventoryUseCase.NewItemUseCaseWithMetrics(useCase, businessMetrics), nil
}
