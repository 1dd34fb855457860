package impl

import (
	"context"
	"testing"

	"buyhive/internal/domain/entity"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/domain/repository"
	"buyhive/internal/errors"
	mockRepo "buyhive/internal/mocks/repository"
	"buyhive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// itemServiceFixtures holds all test dependencies for item service tests.
type itemServiceFixtures struct {
	service  usecase.ItemUsecase
	cartRepo *mockRepo.MockCartRepository
	itemRepo *mockRepo.MockItemRepository
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)

	service := NewItemService(ItemServiceParams{
		CartRepo: cartRepo,
		ItemRepo: itemRepo,
		Logger:   newDiscardLogger(),
	})

	return itemServiceFixtures{
		service:  service,
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

func TestItemService_CreateItem_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	url := "https://shop.example.com/milk"

	fx.itemRepo.EXPECT().FindByURL(ctx, "u1", url).Return(nil, repository.ErrItemNotFound)
	fx.cartRepo.EXPECT().FindByIDs(ctx, "u1", []string{"c1", "c2"}).
		Return([]*entity.Cart{{CartID: "c2"}, {CartID: "c1"}}, nil)
	fx.itemRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.Item) bool {
			return item.Name == "Milk" && item.Notes == nil && len(item.SelectedCartIDs) == 2
		})).
		Return(nil)
	fx.cartRepo.EXPECT().AddItemRef(ctx, "u1", "c1", mock.Anything).Return(true, nil)
	// a failed cart write does not fail the create
	fx.cartRepo.EXPECT().AddItemRef(ctx, "u1", "c2", mock.Anything).Return(false, errors.New("timeout"))

	item, err := fx.service.CreateItem(ctx, "u1", &entity.ItemDetails{
		Name:  " Milk ",
		Price: "$3.99",
		URL:   strPtr(url),
		Notes: strPtr("   "),
	}, []string{"c1", "c2", "c1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, item.SelectedCartIDs)
	assert.Equal(t, "u1", item.UserID)
	assert.NotEmpty(t, item.ItemID)
}

func TestItemService_CreateItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		details *entity.ItemDetails
		cartIDs []string
	}{
		{name: "nil details", details: nil, cartIDs: []string{"c1"}},
		{name: "missing name", details: &entity.ItemDetails{Name: " ", Price: "1"}, cartIDs: []string{"c1"}},
		{name: "missing price", details: &entity.ItemDetails{Name: "Milk"}, cartIDs: []string{"c1"}},
		{name: "no carts", details: &entity.ItemDetails{Name: "Milk", Price: "1"}, cartIDs: []string{}},
		{name: "blank cart ids", details: &entity.ItemDetails{Name: "Milk", Price: "1"}, cartIDs: []string{"", " "}},
		{name: "malformed url", details: &entity.ItemDetails{Name: "Milk", Price: "1", URL: strPtr("not a url")}, cartIDs: []string{"c1"}},
		{name: "script image", details: &entity.ItemDetails{Name: "Milk", Price: "1", Image: strPtr("javascript:alert(1)")}, cartIDs: []string{"c1"}},
		{name: "ftp url", details: &entity.ItemDetails{Name: "Milk", Price: "1", URL: strPtr("ftp://shop.example.com/milk")}, cartIDs: []string{"c1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestItemService(t)

			_, err := fx.service.CreateItem(context.Background(), "u1", tt.details, tt.cartIDs)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestItemService_CreateItem_DuplicateURL(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	url := "https://shop.example.com/milk"
	existing := &entity.Item{ItemID: "i1", URL: strPtr(url), SelectedCartIDs: []string{"c9"}}

	fx.itemRepo.EXPECT().FindByURL(ctx, "u1", url).Return(existing, nil)
	fx.cartRepo.EXPECT().FindByID(ctx, "u1", "c9").Return(&entity.Cart{CartID: "c9", CartName: "Weekly"}, nil)

	_, err := fx.service.CreateItem(ctx, "u1", &entity.ItemDetails{Name: "Milk", Price: "1", URL: strPtr(url)}, []string{"c1"})

	dup, ok := errors.AsType[*domainerrors.DuplicateItemError](err)
	require.True(t, ok)
	assert.Equal(t, "i1", dup.Details())
	assert.Equal(t, `item already exists in cart "Weekly"`, dup.Error())
}

func TestItemService_CreateItem_LostURLRace(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()
	url := "https://shop.example.com/milk"

	fx.itemRepo.EXPECT().FindByURL(ctx, "u1", url).Return(nil, repository.ErrItemNotFound).Once()
	fx.cartRepo.EXPECT().FindByIDs(ctx, "u1", []string{"c1"}).Return([]*entity.Cart{{CartID: "c1"}}, nil)
	fx.itemRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateItemURL)
	fx.itemRepo.EXPECT().FindByURL(ctx, "u1", url).Return(&entity.Item{ItemID: "winner", SelectedCartIDs: []string{}}, nil).Once()

	_, err := fx.service.CreateItem(ctx, "u1", &entity.ItemDetails{Name: "Milk", Price: "1", URL: strPtr(url)}, []string{"c1"})

	dup, ok := errors.AsType[*domainerrors.DuplicateItemError](err)
	require.True(t, ok)
	assert.Equal(t, "winner", dup.Existing.ItemID)
	assert.Equal(t, "item already exists", dup.Error())
}

func TestItemService_CreateItem_NamesFirstMissingCart(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().FindByIDs(ctx, "u1", []string{"c1", "c2", "c3"}).
		Return([]*entity.Cart{{CartID: "c1"}}, nil)

	_, err := fx.service.CreateItem(ctx, "u1", &entity.ItemDetails{Name: "Milk", Price: "1"}, []string{"c1", "c2", "c3"})
	require.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	assert.Contains(t, err.Error(), "c2")
	assert.NotContains(t, err.Error(), "c3")
}

func TestItemService_MoveItem_AppliesDiff(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "u1", "i1").
		Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{"a", "b"}}, nil)
	fx.cartRepo.EXPECT().FindByIDs(ctx, "u1", []string{"b", "c"}).
		Return([]*entity.Cart{{CartID: "b"}, {CartID: "c"}}, nil)
	fx.cartRepo.EXPECT().RemoveItemRef(ctx, "u1", "a", "i1").Return(true, nil)
	fx.cartRepo.EXPECT().AddItemRef(ctx, "u1", "c", "i1").Return(true, nil)
	fx.itemRepo.EXPECT().SetCartRefs(ctx, "u1", "i1", []string{"b", "c"}).
		Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{"b", "c"}}, nil)

	item, err := fx.service.MoveItem(ctx, "u1", "i1", []string{"b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, item.SelectedCartIDs)
}

func TestItemService_MoveItem_MissingTargetWritesNothing(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "u1", "i1").
		Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{"a"}}, nil)
	fx.cartRepo.EXPECT().FindByIDs(ctx, "u1", []string{"b"}).Return([]*entity.Cart{}, nil)

	_, err := fx.service.MoveItem(ctx, "u1", "i1", []string{"b"})
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestItemService_UpdateNote(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().UpdateNote(ctx, "u1", "i1", strPtr("milk &amp; eggs")).
		Return(&entity.Item{ItemID: "i1", Notes: strPtr("milk &amp; eggs")}, nil)

	item, err := fx.service.UpdateNote(ctx, "u1", "i1", "<em>milk</em> & eggs")
	require.NoError(t, err)
	assert.Equal(t, "milk &amp; eggs", *item.Notes)
}

func TestItemService_UpdateNote_BlankClears(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().UpdateNote(ctx, "u1", "i1", (*string)(nil)).Return(&entity.Item{ItemID: "i1"}, nil)

	item, err := fx.service.UpdateNote(ctx, "u1", "i1", "  ")
	require.NoError(t, err)
	assert.Nil(t, item.Notes)
}

func TestItemService_UpdateNote_NotFound(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().UpdateNote(ctx, "u1", "i1", mock.Anything).Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.UpdateNote(ctx, "u1", "i1", "x")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestItemService_RemoveItemFromCart_NotInCart(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().FindByID(ctx, "u1", "c1").Return(&entity.Cart{CartID: "c1", ItemIDs: []string{"i2"}}, nil)

	_, err := fx.service.RemoveItemFromCart(ctx, "u1", "c1", "i1")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestItemService_RemoveItemFromCart_DanglingReference(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().FindByID(ctx, "u1", "c1").Return(&entity.Cart{CartID: "c1", ItemIDs: []string{"i1"}}, nil)
	fx.cartRepo.EXPECT().RemoveItemRef(ctx, "u1", "c1", "i1").Return(true, nil)
	fx.itemRepo.EXPECT().RemoveCartRef(ctx, "u1", "i1", "c1").Return(nil, repository.ErrItemNotFound)

	result, err := fx.service.RemoveItemFromCart(ctx, "u1", "c1", "i1")
	require.NoError(t, err)
	assert.False(t, result.ItemDeleted)
	assert.Nil(t, result.Item)
}

func TestItemService_RemoveItemFromCart_ReAddedConcurrently(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().FindByID(ctx, "u1", "c1").Return(&entity.Cart{CartID: "c1", ItemIDs: []string{"i1"}}, nil)
	fx.cartRepo.EXPECT().RemoveItemRef(ctx, "u1", "c1", "i1").Return(true, nil)
	fx.itemRepo.EXPECT().RemoveCartRef(ctx, "u1", "i1", "c1").Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{}}, nil)
	fx.itemRepo.EXPECT().DeleteIfOrphan(ctx, "u1", "i1").Return(false, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "u1", "i1").Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{"c2"}}, nil)

	result, err := fx.service.RemoveItemFromCart(ctx, "u1", "c1", "i1")
	require.NoError(t, err)
	assert.False(t, result.ItemDeleted)
	assert.Equal(t, []string{"c2"}, result.Item.SelectedCartIDs)
}

func TestItemService_NukeItem_CountsCartOutcomes(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "u1", "i1").
		Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{"a", "b", "c", "gone"}}, nil)
	fx.cartRepo.EXPECT().FindByIDs(ctx, "u1", []string{"a", "b", "c", "gone"}).Return([]*entity.Cart{
		{CartID: "a", ItemIDs: []string{"i1"}},
		{CartID: "b", ItemIDs: []string{"i1"}},
		{CartID: "c", ItemIDs: []string{"other"}},
	}, nil)
	fx.cartRepo.EXPECT().RemoveItemRef(ctx, "u1", "a", "i1").Return(true, nil)
	fx.cartRepo.EXPECT().RemoveItemRef(ctx, "u1", "b", "i1").Return(false, errors.New("timeout"))
	fx.itemRepo.EXPECT().Delete(ctx, "u1", "i1").Return(nil)

	result, err := fx.service.NukeItem(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "i1", result.ItemID)
	assert.Equal(t, 1, result.ModifiedCarts)
	assert.Equal(t, 1, result.FailedCarts)
}

func TestItemService_NukeItem_DeleteFailure(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "u1", "i1").Return(&entity.Item{ItemID: "i1", SelectedCartIDs: []string{}}, nil)
	fx.cartRepo.EXPECT().FindByIDs(ctx, "u1", []string{}).Return([]*entity.Cart{}, nil)
	fx.itemRepo.EXPECT().Delete(ctx, "u1", "i1").Return(errors.New("timeout"))

	_, err := fx.service.NukeItem(ctx, "u1", "i1")
	_, ok := errors.AsType[*domainerrors.StorageUnavailableError](err)
	assert.True(t, ok)
}
