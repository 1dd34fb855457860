package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	mockUsecase "buyhive/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestItemHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockItemUsecase) {
	itemUC := mockUsecase.NewMockItemUsecase(t)
	h := NewItemHandler(itemUC, newDiscardLogger())

	e := newTestEcho("u1")
	e.POST("/items", h.CreateItem)
	e.PUT("/items/:itemId/carts", h.MoveItem)
	e.PUT("/items/:itemId/note", h.UpdateNote)
	e.DELETE("/items/:itemId", h.NukeItem)

	return e, itemUC
}

func TestItemHandler_CreateItem(t *testing.T) {
	e, itemUC := createTestItemHandler(t)

	itemUC.EXPECT().
		CreateItem(mock.Anything, "u1", mock.MatchedBy(func(d *entity.ItemDetails) bool {
			return d.Name == "Milk" && d.Price == "$3" && d.URL != nil && *d.URL == "https://shop.test/milk" && d.Notes == nil
		}), []string{"c1", "c2"}).
		Return(&entity.Item{ItemID: "i1", Name: "Milk", SelectedCartIDs: []string{"c1", "c2"}}, nil)

	rec := doRequest(e, http.MethodPost, "/items",
		`{"name":"Milk","price":"$3","url":"https://shop.test/milk","cart_ids":["c1","c2"]}`)
	requireStatus(t, rec, http.StatusCreated)

	var item entity.Item
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &item))
	assert.Equal(t, "i1", item.ItemID)
}

func TestItemHandler_CreateItem_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"price":"$3","cart_ids":["c1"]}`},
		{name: "missing carts", body: `{"name":"Milk","price":"$3"}`},
		{name: "empty carts", body: `{"name":"Milk","price":"$3","cart_ids":[]}`},
		{name: "malformed url", body: `{"name":"Milk","price":"$3","url":"not a url","cart_ids":["c1"]}`},
		{name: "script image", body: `{"name":"Milk","price":"$3","image":"javascript:alert(1)","cart_ids":["c1"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestItemHandler(t)

			rec := doRequest(e, http.MethodPost, "/items", tt.body)
			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestItemHandler_CreateItem_Duplicate(t *testing.T) {
	e, itemUC := createTestItemHandler(t)

	existing := &entity.Item{ItemID: "i0", Name: "Milk", SelectedCartIDs: []string{"c1"}}
	itemUC.EXPECT().CreateItem(mock.Anything, "u1", mock.Anything, []string{"c1"}).
		Return(nil, domainerrors.NewDuplicateItemError(existing, "Weekly"))

	rec := doRequest(e, http.MethodPost, "/items", `{"name":"Milk","price":"$3","cart_ids":["c1"]}`)
	requireStatus(t, rec, http.StatusConflict)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "DUPLICATE_ITEM", env.Error.Code)
	assert.Contains(t, env.Error.Message, "Weekly")

	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "i0", details["item_id"])
}

func TestItemHandler_MoveItem_EmptyListAllowed(t *testing.T) {
	e, itemUC := createTestItemHandler(t)

	itemUC.EXPECT().MoveItem(mock.Anything, "u1", "i1", []string{}).
		Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{}}, nil)

	rec := doRequest(e, http.MethodPut, "/items/i1/carts", `{"cart_ids":[]}`)
	requireStatus(t, rec, http.StatusOK)
}

func TestItemHandler_MoveItem_MissingList(t *testing.T) {
	e, _ := createTestItemHandler(t)

	rec := doRequest(e, http.MethodPut, "/items/i1/carts", `{}`)
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestItemHandler_UpdateNote(t *testing.T) {
	e, itemUC := createTestItemHandler(t)

	note := "2L"
	itemUC.EXPECT().UpdateNote(mock.Anything, "u1", "i1", "2L").
		Return(&entity.Item{ItemID: "i1", Notes: &note}, nil)

	rec := doRequest(e, http.MethodPut, "/items/i1/note", `{"note":"2L"}`)
	requireStatus(t, rec, http.StatusOK)
}

func TestItemHandler_NukeItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, itemUC := createTestItemHandler(t)

		itemUC.EXPECT().NukeItem(mock.Anything, "u1", "i1").
			Return(&entity.NukeResult{ItemID: "i1", ModifiedCarts: 2}, nil)

		rec := doRequest(e, http.MethodDelete, "/items/i1", "")
		requireStatus(t, rec, http.StatusOK)

		var result entity.NukeResult
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
		assert.Equal(t, 2, result.ModifiedCarts)
	})

	t.Run("not found", func(t *testing.T) {
		e, itemUC := createTestItemHandler(t)

		itemUC.EXPECT().NukeItem(mock.Anything, "u1", "missing").
			Return(nil, domainerrors.ErrItemNotFound.WithDetails("missing"))

		rec := doRequest(e, http.MethodDelete, "/items/missing", "")
		requireStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, "missing", decodeEnvelope(t, rec).Error.Details)
	})
}
