package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("settings"); err == nil {
			return nil
		}

		settings := core.NewBaseCollection("settings")

		settings.Fields.Add(&core.TextField{
			Name:     "shop_name",
			Required: true,
		})
		settings.Fields.Add(&core.EmailField{
			Name: "contact_email",
		})

		// WhatsApp numbers per hand-off channel
		settings.Fields.Add(&core.TextField{
			Name: "booking_whatsapp",
		})
		settings.Fields.Add(&core.TextField{
			Name: "tradein_whatsapp",
		})
		settings.Fields.Add(&core.TextField{
			Name: "orders_whatsapp",
		})

		minZero := float64(0)
		settings.Fields.Add(&core.NumberField{
			Name:    "nairobi_fee",
			Min:     &minZero,
			OnlyInt: true,
		})
		settings.Fields.Add(&core.NumberField{
			Name:    "upcountry_fee",
			Min:     &minZero,
			OnlyInt: true,
		})

		settings.Fields.Add(&core.URLField{
			Name: "public_base_url",
		})
		settings.Fields.Add(&core.TextField{
			Name: "invoice_secret",
		})

		return app.Save(settings)

	}, func(app core.App) error {
		// Rollback
		if collection, err := app.FindCollectionByNameOrId("settings"); err == nil {
			return app.Delete(collection)
		}
		return nil
	})
}
