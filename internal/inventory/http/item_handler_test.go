package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockpile/stockpile/internal/inventory/domain"
	"github.com/stockpile/stockpile/internal/inventory/http/mocks"
	inventoryUseCase "github.com/stockpile/stockpile/internal/inventory/usecase"
)

func newItemRouter(useCase inventoryUseCase.ItemUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewItemHandler(useCase, slog.New(slog.DiscardHandler))

	router := gin.New()
	items := router.Group("/v1/items")
	{
		items.POST("", handler.CreateHandler)
		items.GET("", handler.ListHandler)
		items.GET("/search", handler.SearchHandler)
		items.GET("/low-stock", handler.LowStockHandler)
		items.GET("/total-value", handler.TotalValueHandler)
		items.GET("/:id", handler.GetHandler)
		items.PUT("/:id", handler.UpdateHandler)
		items.DELETE("/:id", handler.DeleteHandler)
	}
	return router
}

func mustNewItem(t *testing.T, name string, quantity int64, unitPrice float64) *domain.Item {
	t.Helper()
	item, err := domain.NewItem(name, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func TestItemHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		item := mustNewItem(t, "Widget", 10, 5.0)

		useCase := new(mocks.MockItemUseCase)
		useCase.On("Create", mock.Anything, mock.AnythingOfType("usecase.CreateItemInput")).
			Return(item, nil)

		router := newItemRouter(useCase)

		body := `{"name": "Widget", "quantity": 10, "unit_price": 5.0}`
		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Widget", resp["name"])
		assert.Equal(t, 50.0, resp["total_value"])
	})

	t.Run("Error_MissingQuantity", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		body := `{"name": "Widget", "unit_price": 5.0}`
		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Create")
	})

	t.Run("Error_NegativeQuantity", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		useCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.ErrInvalidQuantity)

		router := newItemRouter(useCase)

		body := `{"name": "Widget", "quantity": -1, "unit_price": 5.0}`
		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "quantity")
	})

	t.Run("Error_ZeroPrice", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		useCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.ErrInvalidPrice)

		router := newItemRouter(useCase)

		body := `{"name": "Widget", "quantity": 10, "unit_price": 0}`
		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		useCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.ErrItemAlreadyExists)

		router := newItemRouter(useCase)

		body := `{"name": "Widget", "quantity": 10, "unit_price": 5.0}`
		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodPost, "/v1/items", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		item := mustNewItem(t, "Widget", 10, 5.0)

		useCase := new(mocks.MockItemUseCase)
		useCase.On("Get", mock.Anything, item.ID).Return(item, nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/"+item.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), item.ID.String())
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Get")
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())

		useCase := new(mocks.MockItemUseCase)
		useCase.On("Get", mock.Anything, id).Return(nil, domain.ErrItemNotFound)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_Update(t *testing.T) {
	t.Run("Success_RecomputedTotalValue", func(t *testing.T) {
		item := mustNewItem(t, "Widget", 20, 5.0)

		useCase := new(mocks.MockItemUseCase)
		useCase.On("Update", mock.Anything, item.ID, mock.AnythingOfType("usecase.UpdateItemInput")).
			Return(item, nil)

		router := newItemRouter(useCase)

		body := `{"quantity": 20}`
		req := httptest.NewRequest(http.MethodPut, "/v1/items/"+item.ID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 100.0, resp["total_value"])
	})

	t.Run("Error_EmptyUpdate", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())

		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodPut, "/v1/items/"+id.String(), bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Update")
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())

		useCase := new(mocks.MockItemUseCase)
		useCase.On("Update", mock.Anything, id, mock.Anything).
			Return(nil, domain.ErrItemNotFound)

		router := newItemRouter(useCase)

		body := `{"quantity": 20}`
		req := httptest.NewRequest(http.MethodPut, "/v1/items/"+id.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())

		useCase := new(mocks.MockItemUseCase)
		useCase.On("Delete", mock.Anything, id).Return(nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodDelete, "/v1/items/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())

		useCase := new(mocks.MockItemUseCase)
		useCase.On("Delete", mock.Anything, id).Return(domain.ErrItemNotFound)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodDelete, "/v1/items/"+id.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_List(t *testing.T) {
	t.Run("Success_OrderedByName", func(t *testing.T) {
		bolt := mustNewItem(t, "Bolt", 5, 1.0)
		widget := mustNewItem(t, "Widget", 10, 5.0)

		useCase := new(mocks.MockItemUseCase)
		useCase.On("List", mock.Anything, 0, 50).
			Return([]*domain.Item{bolt, widget}, nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []map[string]any `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "Bolt", resp.Items[0]["name"])
		assert.Equal(t, "Widget", resp.Items[1]["name"])
	})

	t.Run("Success_EmptyInventory", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		useCase.On("List", mock.Anything, 0, 50).Return([]*domain.Item{}, nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items?limit=5000", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "List")
	})
}

func TestItemHandler_LowStock(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		bolt := mustNewItem(t, "Bolt", 2, 1.0)

		useCase := new(mocks.MockItemUseCase)
		useCase.On("ListBelowThreshold", mock.Anything, int64(5)).
			Return([]*domain.Item{bolt}, nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/low-stock?threshold=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bolt")
	})

	t.Run("Error_MissingThreshold", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/low-stock", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "ListBelowThreshold")
	})

	t.Run("Error_NegativeThreshold", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/low-stock?threshold=-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestItemHandler_Search(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		widget := mustNewItem(t, "Widget", 10, 5.0)

		useCase := new(mocks.MockItemUseCase)
		useCase.On("SearchByName", mock.Anything, "wid", 0, 50).
			Return([]*domain.Item{widget}, nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/search?name=wid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Widget")
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/search", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "SearchByName")
	})
}

func TestItemHandler_TotalValue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		useCase.On("TotalInventoryValue", mock.Anything).Return(125.5, nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/total-value", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 125.5, resp["total_value"])
	})

	t.Run("Success_EmptyInventorySumsToZero", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		useCase.On("TotalInventoryValue", mock.Anything).Return(0.0, nil)

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/total-value", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_value":0`)
	})

	t.Run("Error_InternalFailureIsOpaque", func(t *testing.T) {
		useCase := new(mocks.MockItemUseCase)
		useCase.On("TotalInventoryValue", mock.Anything).
			Return(0.0, fmt.Errorf("select failed: %w", errors.New("connection refused")))

		router := newItemRouter(useCase)

		req := httptest.NewRequest(http.MethodGet, "/v1/items/total-value", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
