package main

import (
	"fmt"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ANVOGUE STOREFRONT - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitLogger()
	config.InitDB()
	defer config.CloseDB()
	log.Info("connected to catalog database")

	if err := config.CatalogGorm.AutoMigrate(&models.Category{}, &models.ProductRow{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Info("schema migrated")

	categories := seedCategories()
	seedProducts(categories)

	log.Info("catalog seeded")
}

func seedCategories() map[string]uuid.UUID {
	names := map[string]string{
		"Laptops":     "https://cdn.anvogue.shop/categories/laptops.jpg",
		"Smartphones": "https://cdn.anvogue.shop/categories/smartphones.jpg",
		"Tablets":     "https://cdn.anvogue.shop/categories/tablets.jpg",
		"Accessories": "https://cdn.anvogue.shop/categories/accessories.jpg",
	}

	out := make(map[string]uuid.UUID, len(names))
	for name, image := range names {
		var existing models.Category
		err := config.CatalogGorm.Where("name = ?", name).First(&existing).Error
		if err == nil {
			out[name] = existing.ID
			continue
		}

		cat := models.Category{Name: name, Image: image, Status: "Active"}
		if err := config.CatalogGorm.Create(&cat).Error; err != nil {
			log.Fatalf("failed to create category %s: %v", name, err)
		}
		out[name] = cat.ID
		log.Infof("created category %s", name)
	}
	return out
}

func seedProducts(categories map[string]uuid.UUID) {
	products := []models.ProductRow{
		{
			Title:         "ThinkBook 14 G6",
			Description:   "14-inch business laptop",
			ActualPrice:   1199,
			DiscountPrice: 949,
			CategoryID:    categories["Laptops"],
			Brand:         "Lenovo",
			Type:          "Notebook",
			Material:      "Aluminium",
			Colors:        models.StringList{"Arctic Grey"},
			Processor:     "Intel Core i5-1335U",
			RAM:           "16GB",
			DisplaySize:   "14 inch",
			Capacity:      "512GB",
			Features:      models.StringList{"Backlit Keyboard", "Fingerprint Reader"},
			BestSeller:    true,
			Stock:         42,
			SoldQuantity:  310,
		},
		{
			Title:         "MacBook Air 13",
			Description:   "M3, all-day battery",
			ActualPrice:   1299,
			DiscountPrice: 1299,
			CategoryID:    categories["Laptops"],
			Brand:         "Apple",
			Type:          "Ultrabook",
			Material:      "Aluminium",
			Colors:        models.StringList{"Midnight", "Starlight"},
			// Attributes intentionally live only in specifications to
			// exercise the engine's fallback resolution.
			Specifications: models.SpecificationList{
				{Name: "Processor", Detail: []models.SpecificationDetail{
					{Name: "Chip", Value: "Apple M3"},
				}},
				{Name: "Memory", Detail: []models.SpecificationDetail{
					{Name: "RAM", Value: "16GB"},
				}},
				{Name: "Display", Detail: []models.SpecificationDetail{
					{Name: "Size", Value: "13.6 inch"},
				}},
				{Name: "Storage", Detail: []models.SpecificationDetail{
					{Name: "SSD", Value: "256GB"},
				}},
			},
			NewArrival:   true,
			Stock:        17,
			SoldQuantity: 520,
		},
		{
			Title:           "Galaxy S24",
			Description:     "Flagship smartphone",
			ActualPrice:     899,
			DiscountPrice:   749,
			CategoryID:      categories["Smartphones"],
			Brand:           "Samsung",
			Type:            "Smartphone",
			Colors:          models.StringList{"Onyx Black", "Marble Grey"},
			Processor:       "Snapdragon 8 Gen 3",
			RAM:             "8GB",
			DisplaySize:     "6.2 inch",
			OperatingSystem: "Android 14",
			Capacity:        "256GB",
			Features:        models.StringList{"5G", "Wireless Charging"},
			BestSeller:      true,
			Stock:           120,
			SoldQuantity:    980,
		},
		{
			Title:           "Galaxy Tab S9",
			Description:     "11-inch AMOLED tablet",
			ActualPrice:     799,
			DiscountPrice:   649,
			CategoryID:      categories["Tablets"],
			Brand:           "Samsung",
			Type:            "Tablet",
			Colors:          models.StringList{"Graphite"},
			RAM:             "8GB",
			DisplaySize:     "11 inch",
			OperatingSystem: "Android 13",
			Capacity:        "128GB",
			Stock:           35,
			SoldQuantity:    240,
		},
		{
			Title:         "MX Master 3S",
			Description:   "Wireless performance mouse",
			ActualPrice:   99,
			DiscountPrice: 79,
			CategoryID:    categories["Accessories"],
			Brand:         "Logitech",
			Type:          "Mouse",
			Colors:        models.StringList{"Graphite", "Pale Grey"},
			Features:      models.StringList{"Bluetooth", "USB-C"},
			Stock:         300,
			SoldQuantity:  1500,
		},
	}

	for i := range products {
		var count int64
		config.CatalogGorm.Model(&models.ProductRow{}).
			Where("title = ?", products[i].Title).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := config.CatalogGorm.Create(&products[i]).Error; err != nil {
			log.Fatalf("failed to create product %s: %v", products[i].Title, err)
		}
		log.Infof("created product %s", products[i].Title)
	}
}
