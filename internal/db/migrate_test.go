package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
)

func setupSeedTest(t *testing.T) {
	t.Helper()

	database, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		CleanupTestDB(database)
		DB = nil
	})
	DB = database
}

func TestSeedProductsPopulatesEmptyCatalog(t *testing.T) {
	setupSeedTest(t)

	require.NoError(t, SeedProducts())

	var count int64
	require.NoError(t, DB.Model(&model.Product{}).Count(&count).Error)
	assert.Equal(t, int64(len(CatalogSeed())), count)

	var product model.Product
	require.NoError(t, DB.Where("product_id = ?", 1).First(&product).Error)
	assert.Equal(t, "Premium Wireless Headphones", product.Name)
	assert.Equal(t, 299.99, product.Price)
	assert.Equal(t, 4.8, product.Rating.Rate)
}

func TestSeedProductsSkipsNonEmptyCatalog(t *testing.T) {
	setupSeedTest(t)

	existing := model.Product{ProductID: 500, Name: "Pre-existing", Price: 1.00}
	require.NoError(t, DB.Create(&existing).Error)

	require.NoError(t, SeedProducts())

	var count int64
	require.NoError(t, DB.Model(&model.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "a non-empty catalog is left alone")
}

func TestSeedUsers(t *testing.T) {
	setupSeedTest(t)

	require.NoError(t, SeedUsers())

	var users []model.User
	require.NoError(t, DB.Preload("Wishlist").Order("id ASC").Find(&users).Error)
	require.Len(t, users, 5)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Len(t, users[0].Wishlist, 4)

	// Running again must not duplicate accounts.
	require.NoError(t, SeedUsers())
	var count int64
	require.NoError(t, DB.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}
