package migrations

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("settings")
		if err != nil {
			return err
		}

		// Only seed once
		if existing, _ := app.FindRecordsByFilter(collection.Name, "id != ''", "", 1, 0, nil); len(existing) > 0 {
			return nil
		}

		// Fresh random invoice secret per install
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return err
		}

		record := core.NewRecord(collection)
		record.Set("shop_name", "ElectroWorld")
		record.Set("contact_email", "electroworldke@gmail.com")
		record.Set("booking_whatsapp", "+254706234072")
		record.Set("tradein_whatsapp", "+254799654737")
		record.Set("orders_whatsapp", "+254706234072")
		record.Set("nairobi_fee", 200)
		record.Set("upcountry_fee", 400)
		record.Set("public_base_url", "http://localhost:8090")
		record.Set("invoice_secret", hex.EncodeToString(buf))

		return app.Save(record)

	}, func(app core.App) error {
		// Rollback: settings records are removed with the collection
		return nil
	})
}
