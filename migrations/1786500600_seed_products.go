package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			return err
		}

		// Only seed an empty catalog
		if existing, _ := app.FindRecordsByFilter(collection.Name, "id != ''", "", 1, 0, nil); len(existing) > 0 {
			return nil
		}

		seed := []struct {
			Name     string
			Category string
			Price    int
		}{
			// Phones
			{"iPhone 13 128GB", "Phones", 75000},
			{"iPhone 12 64GB", "Phones", 58000},
			{"Samsung Galaxy A54", "Phones", 38000},
			{"Samsung Galaxy S23", "Phones", 95000},
			{"Samsung Galaxy A14", "Phones", 17500},

			// Covers & Protectors
			{"iPhone 13 Silicone Cover", "Covers & Protectors", 1500},
			{"iPhone 12 Clear Case", "Covers & Protectors", 1200},
			{"Samsung A54 Rugged Cover", "Covers & Protectors", 1800},
			{"Tempered Glass Protector", "Covers & Protectors", 800},
			{"Privacy Screen Protector", "Covers & Protectors", 1200},

			// Laptops
			{"MacBook Air M1 256GB", "Laptops", 125000},
			{"Dell XPS 13", "Laptops", 145000},
			{"HP Pavilion 15", "Laptops", 78000},
			{"Lenovo ThinkPad T14", "Laptops", 98000},

			// Accessories
			{"20W USB-C Fast Charger", "Accessories", 2500},
			{"Lightning Cable 1m", "Accessories", 1000},
			{"Wireless Earbuds", "Accessories", 4500},
			{"10000mAh Power Bank", "Accessories", 3500},
			{"Laptop Sleeve 14 inch", "Accessories", 2000},
		}

		for _, p := range seed {
			record := core.NewRecord(collection)
			record.Set("name", p.Name)
			record.Set("category", p.Category)
			record.Set("price", p.Price)
			record.Set("active", true)
			if err := app.Save(record); err != nil {
				return err
			}
		}
		return nil

	}, func(app core.App) error {
		// Rollback: product records are removed with the collection
		return nil
	})
}
