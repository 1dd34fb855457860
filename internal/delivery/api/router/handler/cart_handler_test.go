package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/errors"
	mockUsecase "buyhive/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartHandlerFixtures struct {
	echo   *echo.Echo
	cartUC *mockUsecase.MockCartUsecase
	itemUC *mockUsecase.MockItemUsecase
}

func createTestCartHandler(t *testing.T, userID string) cartHandlerFixtures {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	itemUC := mockUsecase.NewMockItemUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC, ItemUC: itemUC, Logger: newDiscardLogger()})

	e := newTestEcho(userID)
	e.GET("/carts", h.ListCarts)
	e.POST("/carts", h.CreateCart)
	e.PATCH("/carts/:cartId", h.RenameCart)
	e.DELETE("/carts/:cartId", h.DeleteCart)
	e.GET("/carts/:cartId/items", h.GetCartItems)
	e.DELETE("/carts/:cartId/items/:itemId", h.RemoveItemFromCart)

	return cartHandlerFixtures{echo: e, cartUC: cartUC, itemUC: itemUC}
}

func TestCartHandler_CreateCart(t *testing.T) {
	fx := createTestCartHandler(t, "u1")

	fx.cartUC.EXPECT().CreateCart(mock.Anything, "u1", "Groceries").
		Return(&entity.Cart{CartID: "c1", UserID: "u1", CartName: "Groceries", ItemIDs: []string{}}, nil)

	rec := doRequest(fx.echo, http.MethodPost, "/carts", `{"cart_name":"Groceries"}`)
	requireStatus(t, rec, http.StatusCreated)

	var cart entity.Cart
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &cart))
	assert.Equal(t, "c1", cart.CartID)
	assert.Equal(t, "Groceries", cart.CartName)
}

func TestCartHandler_CreateCart_MissingName(t *testing.T) {
	fx := createTestCartHandler(t, "u1")

	rec := doRequest(fx.echo, http.MethodPost, "/carts", `{}`)
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestCartHandler_CreateCart_Unauthenticated(t *testing.T) {
	fx := createTestCartHandler(t, "")

	rec := doRequest(fx.echo, http.MethodPost, "/carts", `{"cart_name":"Groceries"}`)
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestCartHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        errors.Wrap(domainerrors.ErrCartNotFound.WithDetails("c1"), "find cart"),
			wantStatus: http.StatusNotFound,
			wantCode:   "CART_NOT_FOUND",
		},
		{
			name:       "validation",
			err:        errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("cart name is required")),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "storage",
			err:        domainerrors.NewStorageUnavailableError(errors.New("timeout"), "rename cart"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "STORAGE_UNAVAILABLE",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartHandler(t, "u1")
			fx.cartUC.EXPECT().RenameCart(mock.Anything, "u1", "c1", "New").Return(nil, tt.err)

			rec := doRequest(fx.echo, http.MethodPatch, "/carts/c1", `{"cart_name":"New"}`)
			requireStatus(t, rec, tt.wantStatus)

			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantStatus >= http.StatusInternalServerError {
				assert.Nil(t, env.Error.Details)
			}
		})
	}
}

func TestCartHandler_DeleteCart(t *testing.T) {
	fx := createTestCartHandler(t, "u1")

	fx.cartUC.EXPECT().DeleteCart(mock.Anything, "u1", "c1").
		Return(&entity.CleanupResult{Attempted: 3, Succeeded: 3, OrphansDeleted: 1}, nil)

	rec := doRequest(fx.echo, http.MethodDelete, "/carts/c1", "")
	requireStatus(t, rec, http.StatusOK)

	var body DeleteCartResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "c1", body.CartID)
	assert.Equal(t, 1, body.Cleanup.OrphansDeleted)
}

func TestCartHandler_GetCartItems(t *testing.T) {
	fx := createTestCartHandler(t, "u1")

	fx.cartUC.EXPECT().GetCartItems(mock.Anything, "u1", "c1").
		Return([]*entity.Item{{ItemID: "i1", Name: "Milk"}}, nil)

	rec := doRequest(fx.echo, http.MethodGet, "/carts/c1/items", "")
	requireStatus(t, rec, http.StatusOK)

	var items []entity.Item
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestCartHandler_RemoveItemFromCart(t *testing.T) {
	fx := createTestCartHandler(t, "u1")

	fx.itemUC.EXPECT().RemoveItemFromCart(mock.Anything, "u1", "c1", "i1").
		Return(&entity.RemovalResult{ItemDeleted: true}, nil)

	rec := doRequest(fx.echo, http.MethodDelete, "/carts/c1/items/i1", "")
	requireStatus(t, rec, http.StatusOK)

	var result entity.RemovalResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
	assert.True(t, result.ItemDeleted)
}

func TestCartHandler_ListCarts(t *testing.T) {
	fx := createTestCartHandler(t, "u1")

	fx.cartUC.EXPECT().ListCarts(mock.Anything, "u1").Return([]*entity.Cart{{CartID: "a"}, {CartID: "b"}}, nil)

	rec := doRequest(fx.echo, http.MethodGet, "/carts", "")
	requireStatus(t, rec, http.StatusOK)

	var carts []entity.Cart
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &carts))
	assert.Len(t, carts, 2)
}
