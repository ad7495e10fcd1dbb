package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("products"); err == nil {
			return nil
		}

		products := core.NewBaseCollection("products")

		products.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
		})

		// Merchandise grouping shown as storefront tabs
		products.Fields.Add(&core.SelectField{
			Name:     "category",
			Required: true,
			Values:   []string{"Phones", "Covers & Protectors", "Laptops", "Accessories"},
		})

		// Whole KES
		minZero := float64(0)
		products.Fields.Add(&core.NumberField{
			Name:     "price",
			Required: true,
			Min:      &minZero,
			OnlyInt:  true,
		})

		products.Fields.Add(&core.FileField{
			Name:      "image",
			MaxSelect: 1,
			MaxSize:   5242880, // 5MB
		})

		products.Fields.Add(&core.BoolField{
			Name: "active",
		})

		products.Indexes = []string{
			"CREATE INDEX idx_products_category ON products (category)",
			"CREATE INDEX idx_products_active ON products (active)",
		}

		return app.Save(products)

	}, func(app core.App) error {
		// Rollback
		if collection, err := app.FindCollectionByNameOrId("products"); err == nil {
			return app.Delete(collection)
		}
		return nil
	})
}
