// Package http provides HTTP handlers for inventory item operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stockpile/stockpile/internal/httputil"
	"github.com/stockpile/stockpile/internal/inventory/http/dto"
	inventoryUseCase "github.com/stockpile/stockpile/internal/inventory/usecase"
	customValidation "github.com/stockpile/stockpile/internal/validation"
)

// ItemHandler handles HTTP requests for inventory item operations.
type ItemHandler struct {
	itemUseCase inventoryUseCase.ItemUseCase
	logger      *slog.Logger
}

// NewItemHandler creates a new item handler with required dependencies.
func NewItemHandler(itemUseCase inventoryUseCase.ItemUseCase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
		logger:      logger,
	}
}

// CreateHandler creates a new inventory item.
// POST /v1/items - Requires the ADMIN role.
// Returns 201 Created with the item, total value included.
func (h *ItemHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	item, err := h.itemUseCase.Create(c.Request.Context(), req.ToCreateItemInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapItemToResponse(item))
}

// GetHandler retrieves an inventory item by ID.
// GET /v1/items/:id - Requires any authenticated principal.
func (h *ItemHandler) GetHandler(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	item, err := h.itemUseCase.Get(c.Request.Context(), itemID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToResponse(item))
}

// UpdateHandler applies a partial update to an inventory item.
// PUT /v1/items/:id - Requires the ADMIN role.
// Returns 200 OK with the updated item, its total value recomputed.
func (h *ItemHandler) UpdateHandler(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	item, err := h.itemUseCase.Update(c.Request.Context(), itemID, req.ToUpdateItemInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToResponse(item))
}

// DeleteHandler removes an inventory item.
// DELETE /v1/items/:id - Requires the ADMIN role.
// Returns 204 No Content.
func (h *ItemHandler) DeleteHandler(c *gin.Context) {
	itemID, ok := h.parseItemID(c)
	if !ok {
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), itemID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListHandler lists inventory items ordered by name.
// GET /v1/items - Requires any authenticated principal.
func (h *ItemHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	items, err := h.itemUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemsToListResponse(items, offset, limit))
}

// LowStockHandler lists items whose quantity is strictly below the threshold.
// GET /v1/items/low-stock?threshold=N - Requires any authenticated principal.
func (h *ItemHandler) LowStockHandler(c *gin.Context) {
	thresholdStr := c.Query("threshold")
	threshold, err := strconv.ParseInt(thresholdStr, 10, 64)
	if err != nil || threshold < 0 {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid threshold parameter: must be a non-negative integer"),
			h.logger)
		return
	}

	items, err := h.itemUseCase.ListBelowThreshold(c.Request.Context(), threshold)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemsToListResponse(items, 0, len(items)))
}

// SearchHandler lists items whose name contains the given fragment.
// GET /v1/items/search?name=fragment - Requires any authenticated principal.
func (h *ItemHandler) SearchHandler(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("name parameter is required"),
			h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	items, err := h.itemUseCase.SearchByName(c.Request.Context(), name, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemsToListResponse(items, offset, limit))
}

// TotalValueHandler returns the sum of every item's total value.
// GET /v1/items/total-value - Requires any authenticated principal.
func (h *ItemHandler) TotalValueHandler(c *gin.Context) {
	total, err := h.itemUseCase.TotalInventoryValue(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TotalValueResponse{TotalValue: total})
}

// parseItemID parses and validates the :id URL parameter. It writes the
// error response itself when parsing fails.
func (h *ItemHandler) parseItemID(c *gin.Context) (uuid.UUID, bool) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid item ID format: must be a valid UUID"),
			h.logger)
		return uuid.Nil, false
	}
	return itemID, true
}
