package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/db"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (CartRepository, *gorm.DB) {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	return NewCartRepository(database), database
}

func TestCartFindByUserKey(t *testing.T) {
	repo, database := setupCartRepositoryTest(t)

	cart, err := repo.FindByUserKey("user-1")
	require.NoError(t, err)
	assert.Nil(t, cart, "missing cart is nil, not an error")

	require.NoError(t, repo.Create(database, &model.Cart{UserKey: "user-1"}))

	cart, err = repo.FindByUserKey("user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, "user-1", cart.UserKey)
	assert.Empty(t, cart.Items)
}

func TestCartLineItemLifecycle(t *testing.T) {
	repo, database := setupCartRepositoryTest(t)

	cart := &model.Cart{UserKey: "user-1"}
	require.NoError(t, repo.Create(database, cart))

	item := &model.CartLineItem{CartID: cart.ID, ProductID: 1, Name: "Headphones", Price: 10.0, Quantity: 2}
	require.NoError(t, repo.AddLineItem(database, item))
	require.NoError(t, repo.AddLineItem(database, &model.CartLineItem{
		CartID: cart.ID, ProductID: 2, Name: "Watch", Price: 5.5, Quantity: 1,
	}))

	require.NoError(t, repo.UpdateLineItemQuantity(database, item.ID, 4))
	require.NoError(t, repo.UpdateTotal(database, cart.ID, 45.5))

	found, err := repo.FindByUserKey("user-1")
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, 4, found.Items[0].Quantity)
	assert.Equal(t, 45.5, found.TotalAmount)

	require.NoError(t, repo.DeleteLineItem(database, item.ID))
	found, err = repo.FindByUserKey("user-1")
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, 2, found.Items[0].ProductID)

	require.NoError(t, repo.DeleteAllLineItems(database, cart.ID))
	found, err = repo.FindByUserKey("user-1")
	require.NoError(t, err)
	assert.Empty(t, found.Items)
}

func TestCartOnePerUserKey(t *testing.T) {
	repo, database := setupCartRepositoryTest(t)

	require.NoError(t, repo.Create(database, &model.Cart{UserKey: "user-1"}))
	err := repo.Create(database, &model.Cart{UserKey: "user-1"})
	assert.Error(t, err, "second cart for the same key is blocked by the schema")
}
