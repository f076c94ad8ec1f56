package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/pkg/e"
)

func newCartUC(cartRepo *mockCartRepo, productRepo *mockProductRepo, sessionRepo *mockSessionRepo, db *mockDB) *CartUseCase {
	return NewCartUC(cartRepo, productRepo, sessionRepo, db, nopLogger{})
}

func TestCartGet_NoCartReturnsEmptyList(t *testing.T) {
	uc := newCartUC(&mockCartRepo{}, &mockProductRepo{}, &mockSessionRepo{hasCart: false}, newMockDB())

	items, err := uc.GetCart(context.Background(), "token")

	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartGet_ReturnsSessionCartItems(t *testing.T) {
	cartRepo := &mockCartRepo{
		listItems: []CartItemInfo{
			{CartItemID: 1, ProductID: 3, Price: 2599, Name: "Abbey Road"},
		},
	}
	uc := newCartUC(cartRepo, &mockProductRepo{}, &mockSessionRepo{hasCart: true, cartID: 7}, newMockDB())

	items, err := uc.GetCart(context.Background(), "token")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), cartRepo.listedCartID)
	assert.Equal(t, int64(2599), items[0].Price)
}

func TestCartAddItem_RejectsNonPositiveProductID(t *testing.T) {
	uc := newCartUC(&mockCartRepo{}, &mockProductRepo{}, &mockSessionRepo{}, newMockDB())

	for _, productID := range []int64{0, -5} {
		_, err := uc.AddItem(context.Background(), "token", productID)

		clientErr, ok := e.AsClientError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, clientErr.Status)
		assert.Equal(t, "productId must be a positive integer", clientErr.Message)
	}
}

func TestCartAddItem_UnknownProductRollsBack(t *testing.T) {
	db := newMockDB()
	productRepo := &mockProductRepo{priceErr: e.Wrap("ProductRepo.GetPrice", pgx.ErrNoRows)}
	uc := newCartUC(&mockCartRepo{}, productRepo, &mockSessionRepo{}, db)

	_, err := uc.AddItem(context.Background(), "token", 42)

	clientErr, ok := e.AsClientError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, clientErr.Status)
	assert.Equal(t, "unable to locate productId 42", clientErr.Message)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Equal(t, 0, db.tx.commits)
}

func TestCartAddItem_FirstAddCreatesCart(t *testing.T) {
	db := newMockDB()
	cartRepo := &mockCartRepo{
		createdCart: &domain.Cart{ID: 11, CreatedAt: time.Now()},
		insertID:    101,
		item:        &CartItemInfo{CartItemID: 101, ProductID: 3, Price: 2599},
	}
	sessionRepo := &mockSessionRepo{hasCart: false}
	uc := newCartUC(cartRepo, &mockProductRepo{price: 2599}, sessionRepo, db)

	item, err := uc.AddItem(context.Background(), "token", 3)

	require.NoError(t, err)
	assert.True(t, cartRepo.createCalled)
	require.NotNil(t, cartRepo.insertedItem)
	assert.Equal(t, int64(11), cartRepo.insertedItem.CartID)
	assert.Equal(t, int64(2599), cartRepo.insertedItem.Price)
	assert.Equal(t, int64(101), item.CartItemID)

	// Корзина привязывается к сессии только после коммита
	assert.Equal(t, 1, db.tx.commits)
	require.NotNil(t, sessionRepo.setCart)
	assert.Equal(t, int64(11), *sessionRepo.setCart)
}

func TestCartAddItem_ReusesSessionCart(t *testing.T) {
	db := newMockDB()
	cartRepo := &mockCartRepo{
		insertID: 102,
		item:     &CartItemInfo{CartItemID: 102, ProductID: 3, Price: 2599},
	}
	uc := newCartUC(cartRepo, &mockProductRepo{price: 2599}, &mockSessionRepo{hasCart: true, cartID: 7}, db)

	_, err := uc.AddItem(context.Background(), "token", 3)

	require.NoError(t, err)
	assert.False(t, cartRepo.createCalled)
	require.NotNil(t, cartRepo.insertedItem)
	assert.Equal(t, int64(7), cartRepo.insertedItem.CartID)
	assert.Equal(t, 1, db.tx.commits)
}
