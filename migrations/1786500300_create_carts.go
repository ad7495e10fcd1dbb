package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("carts"); err == nil {
			return nil
		}

		carts := core.NewBaseCollection("carts")

		// Opaque client token from the cart cookie, one cart per token
		carts.Fields.Add(&core.TextField{
			Name:     "token",
			Required: true,
		})

		// Full cart snapshot (lines, delivery zone, contact form)
		carts.Fields.Add(&core.JSONField{
			Name: "data",
		})

		carts.Indexes = []string{
			"CREATE UNIQUE INDEX idx_carts_token ON carts (token)",
		}

		return app.Save(carts)

	}, func(app core.App) error {
		// Rollback
		if collection, err := app.FindCollectionByNameOrId("carts"); err == nil {
			return app.Delete(collection)
		}
		return nil
	})
}
