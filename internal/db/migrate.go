package db

import (
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Product{},
		&model.Cart{},
		&model.CartLineItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.User{},
		&model.WishlistItem{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// SeedProducts populates the catalog if it is empty. The whole batch goes in
// a single transaction: existing data is never overwritten and a failure
// leaves no partial catalog behind.
func SeedProducts() error {
	var count int64
	if err := DB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Catalog already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding catalog products...")

	products := CatalogSeed()
	err := DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&products).Error
	})
	if err != nil {
		logger.Error("Failed to seed catalog products", err)
		return err
	}

	logger.Info("Catalog products seeded successfully", map[string]interface{}{
		"total_records": len(products),
	})
	return nil
}

// SeedUsers creates the demo accounts used by the storefront walkthrough.
func SeedUsers() error {
	var count int64
	if err := DB.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Users already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding demo users...")

	users := demoUserSeed()
	err := DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&users).Error
	})
	if err != nil {
		logger.Error("Failed to seed demo users", err)
		return err
	}

	logger.Info("Demo users seeded successfully", map[string]interface{}{
		"total_records": len(users),
	})
	return nil
}

// CatalogSeed returns the static storefront catalog.
func CatalogSeed() []model.Product {
	return []model.Product{
		{
			ProductID:   1,
			Name:        "Premium Wireless Headphones",
			Price:       299.99,
			Description: "High-quality wireless headphones with active noise cancellation and 30-hour battery life.",
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.8, Count: 342},
		},
		{
			ProductID:   2,
			Name:        "Smart Fitness Watch",
			Price:       249.99,
			Description: "Track your fitness goals with this sleek smartwatch featuring heart rate monitoring and GPS.",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&q=80",
			Category:    "Wearables",
			Rating:      model.Rating{Rate: 4.6, Count: 289},
		},
		{
			ProductID:   3,
			Name:        "Designer Backpack",
			Price:       89.99,
			Description: "Stylish and functional backpack perfect for work, travel, or everyday use.",
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&q=80",
			Category:    "Fashion",
			Rating:      model.Rating{Rate: 4.7, Count: 156},
		},
		{
			ProductID:   4,
			Name:        "Mechanical Gaming Keyboard",
			Price:       159.99,
			Description: "RGB mechanical keyboard with customizable keys and ultra-responsive switches.",
			ImageURL:    "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.9, Count: 423},
		},
		{
			ProductID:   5,
			Name:        "Professional Camera Lens",
			Price:       799.99,
			Description: "High-performance 50mm f/1.8 lens for stunning portrait and low-light photography.",
			ImageURL:    "https://images.unsplash.com/photo-1606800052052-a08af7148866?w=500&q=80",
			Category:    "Photography",
			Rating:      model.Rating{Rate: 4.9, Count: 201},
		},
		{
			ProductID:   6,
			Name:        "Ergonomic Office Chair",
			Price:       399.99,
			Description: "Premium ergonomic chair with lumbar support and adjustable armrests for all-day comfort.",
			ImageURL:    "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=500&q=80",
			Category:    "Furniture",
			Rating:      model.Rating{Rate: 4.5, Count: 178},
		},
		{
			ProductID:   7,
			Name:        "Portable Bluetooth Speaker",
			Price:       129.99,
			Description: "Waterproof speaker with 360° sound and 24-hour battery life for any adventure.",
			ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.7, Count: 512},
		},
		{
			ProductID:   8,
			Name:        "Premium Coffee Maker",
			Price:       199.99,
			Description: "Programmable coffee maker with built-in grinder and thermal carafe.",
			ImageURL:    "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500&q=80",
			Category:    "Home & Kitchen",
			Rating:      model.Rating{Rate: 4.6, Count: 267},
		},
		{
			ProductID:   9,
			Name:        "Minimalist Desk Lamp",
			Price:       79.99,
			Description: "LED desk lamp with adjustable brightness and color temperature for optimal lighting.",
			ImageURL:    "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&q=80",
			Category:    "Home & Office",
			Rating:      model.Rating{Rate: 4.4, Count: 145},
		},
		{
			ProductID:   10,
			Name:        "Yoga Mat Pro",
			Price:       59.99,
			Description: "Extra-thick, non-slip yoga mat with carrying strap for comfortable workouts.",
			ImageURL:    "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&q=80",
			Category:    "Fitness",
			Rating:      model.Rating{Rate: 4.8, Count: 389},
		},
		{
			ProductID:   11,
			Name:        "Wireless Gaming Mouse",
			Price:       79.99,
			Description: "Ultra-responsive wireless gaming mouse with 16000 DPI and customizable RGB lighting.",
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.7, Count: 298},
		},
		{
			ProductID:   12,
			Name:        "Leather Messenger Bag",
			Price:       149.99,
			Description: "Handcrafted genuine leather messenger bag with laptop compartment and adjustable strap.",
			ImageURL:    "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=500&q=80",
			Category:    "Fashion",
			Rating:      model.Rating{Rate: 4.8, Count: 187},
		},
		{
			ProductID:   13,
			Name:        "4K Action Camera",
			Price:       349.99,
			Description: "Waterproof 4K action camera with image stabilization and voice control.",
			ImageURL:    "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?w=500&q=80",
			Category:    "Photography",
			Rating:      model.Rating{Rate: 4.6, Count: 412},
		},
		{
			ProductID:   14,
			Name:        "Smart LED Bulbs (4-Pack)",
			Price:       49.99,
			Description: "WiFi-enabled smart LED bulbs with 16 million colors and voice assistant compatibility.",
			ImageURL:    "https://images.unsplash.com/photo-1550985616-10810253b84d?w=500&q=80",
			Category:    "Smart Home",
			Rating:      model.Rating{Rate: 4.5, Count: 523},
		},
		{
			ProductID:   15,
			Name:        "Stainless Steel Water Bottle",
			Price:       34.99,
			Description: "Insulated stainless steel water bottle keeps drinks cold for 24 hours or hot for 12 hours.",
			ImageURL:    "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500&q=80",
			Category:    "Fitness",
			Rating:      model.Rating{Rate: 4.9, Count: 678},
		},
		{
			ProductID:   16,
			Name:        "Wireless Charging Pad",
			Price:       29.99,
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices with LED indicator.",
			ImageURL:    "https://images.unsplash.com/photo-1591290619762-37ddf8fbce2a?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.4, Count: 234},
		},
		{
			ProductID:   17,
			Name:        "Running Shoes Pro",
			Price:       129.99,
			Description: "Lightweight running shoes with responsive cushioning and breathable mesh upper.",
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&q=80",
			Category:    "Fashion",
			Rating:      model.Rating{Rate: 4.7, Count: 567},
		},
		{
			ProductID:   18,
			Name:        "Laptop Stand Adjustable",
			Price:       59.99,
			Description: "Ergonomic aluminum laptop stand with adjustable height and angle for better posture.",
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&q=80",
			Category:    "Home & Office",
			Rating:      model.Rating{Rate: 4.6, Count: 312},
		},
		{
			ProductID:   19,
			Name:        "Smart Thermostat",
			Price:       199.99,
			Description: "Energy-saving smart thermostat with WiFi connectivity and learning capabilities.",
			ImageURL:    "https://images.unsplash.com/photo-1558002038-1055907df827?w=500&q=80",
			Category:    "Smart Home",
			Rating:      model.Rating{Rate: 4.8, Count: 445},
		},
		{
			ProductID:   20,
			Name:        "Air Purifier HEPA",
			Price:       179.99,
			Description: "HEPA air purifier removes 99.97% of airborne particles with smart air quality monitoring.",
			ImageURL:    "https://images.unsplash.com/photo-1585771724684-38269d6639fd?w=500&q=80",
			Category:    "Home & Kitchen",
			Rating:      model.Rating{Rate: 4.7, Count: 389},
		},
		{
			ProductID:   21,
			Name:        "Noise-Canceling Earbuds",
			Price:       199.99,
			Description: "True wireless earbuds with active noise cancellation and 8-hour battery life.",
			ImageURL:    "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.8, Count: 789},
		},
		{
			ProductID:   22,
			Name:        "Digital Drawing Tablet",
			Price:       299.99,
			Description: "Professional drawing tablet with 8192 pressure levels and tilt recognition.",
			ImageURL:    "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.9, Count: 234},
		},
		{
			ProductID:   23,
			Name:        "Resistance Bands Set",
			Price:       24.99,
			Description: "Complete resistance bands set with 5 bands, door anchor, and carrying bag.",
			ImageURL:    "https://images.unsplash.com/photo-1598289431512-b97b0917affc?w=500&q=80",
			Category:    "Fitness",
			Rating:      model.Rating{Rate: 4.6, Count: 456},
		},
		{
			ProductID:   24,
			Name:        "Electric Kettle",
			Price:       49.99,
			Description: "Stainless steel electric kettle with temperature control and keep-warm function.",
			ImageURL:    "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=500&q=80",
			Category:    "Home & Kitchen",
			Rating:      model.Rating{Rate: 4.5, Count: 298},
		},
		{
			ProductID:   25,
			Name:        "Sunglasses Polarized",
			Price:       89.99,
			Description: "Polarized sunglasses with UV400 protection and lightweight titanium frame.",
			ImageURL:    "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=500&q=80",
			Category:    "Fashion",
			Rating:      model.Rating{Rate: 4.7, Count: 412},
		},
		{
			ProductID:   26,
			Name:        "Smart Doorbell Camera",
			Price:       149.99,
			Description: "Video doorbell with 1080p HD camera, two-way audio, and motion detection.",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=500&q=80",
			Category:    "Smart Home",
			Rating:      model.Rating{Rate: 4.6, Count: 567},
		},
		{
			ProductID:   27,
			Name:        "Professional Tripod",
			Price:       129.99,
			Description: "Aluminum tripod with fluid head for smooth panning and tilting movements.",
			ImageURL:    "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=500&q=80",
			Category:    "Photography",
			Rating:      model.Rating{Rate: 4.8, Count: 234},
		},
		{
			ProductID:   28,
			Name:        "Adjustable Dumbbells",
			Price:       249.99,
			Description: "Space-saving adjustable dumbbells from 5 to 52.5 lbs with easy-turn dial system.",
			ImageURL:    "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=500&q=80",
			Category:    "Fitness",
			Rating:      model.Rating{Rate: 4.9, Count: 678},
		},
		{
			ProductID:   29,
			Name:        "Monitor Stand with Drawers",
			Price:       79.99,
			Description: "Wooden monitor stand with storage drawers for office organization.",
			ImageURL:    "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=500&q=80",
			Category:    "Home & Office",
			Rating:      model.Rating{Rate: 4.5, Count: 189},
		},
		{
			ProductID:   30,
			Name:        "Portable SSD 1TB",
			Price:       149.99,
			Description: "Ultra-fast portable SSD with USB-C 3.2 Gen 2 and 1050MB/s read speeds.",
			ImageURL:    "https://images.unsplash.com/photo-1531492746076-161ca9bcad58?w=500&q=80",
			Category:    "Electronics",
			Rating:      model.Rating{Rate: 4.8, Count: 445},
		},
	}
}

func demoUserSeed() []model.User {
	demo := []struct {
		name     string
		email    string
		avatar   string
		wishlist []int
	}{
		{"Alice Johnson", "alice@example.com", "https://ui-avatars.com/api/?name=Alice+Johnson&background=6366f1&color=fff", []int{1, 5, 10, 15}},
		{"Bob Smith", "bob@example.com", "https://ui-avatars.com/api/?name=Bob+Smith&background=8b5cf6&color=fff", []int{2, 8, 12}},
		{"Carol Davis", "carol@example.com", "https://ui-avatars.com/api/?name=Carol+Davis&background=ec4899&color=fff", []int{3, 7, 20, 25}},
		{"David Wilson", "david@example.com", "https://ui-avatars.com/api/?name=David+Wilson&background=f59e0b&color=fff", nil},
		{"Emma Brown", "emma@example.com", "https://ui-avatars.com/api/?name=Emma+Brown&background=10b981&color=fff", []int{4, 11, 18, 22, 28}},
	}

	users := make([]model.User, 0, len(demo))
	for _, d := range demo {
		user := model.User{
			Name:     d.name,
			Email:    d.email,
			Password: "password123",
			Avatar:   d.avatar,
		}
		for _, productID := range d.wishlist {
			user.Wishlist = append(user.Wishlist, model.WishlistItem{ProductID: productID})
		}
		users = append(users, user)
	}
	return users
}
