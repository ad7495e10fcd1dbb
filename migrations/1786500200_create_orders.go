package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("orders"); err == nil {
			return nil
		}

		orders := core.NewBaseCollection("orders")

		orders.Fields.Add(&core.TextField{
			Name:     "order_number",
			Required: true,
		})

		orders.Fields.Add(&core.TextField{
			Name:     "customer_name",
			Required: true,
		})
		orders.Fields.Add(&core.TextField{
			Name:     "customer_phone",
			Required: true,
		})
		orders.Fields.Add(&core.EmailField{
			Name: "customer_email",
		})
		orders.Fields.Add(&core.TextField{
			Name: "customer_location",
		})

		// Purchased lines, snapshotted with server prices at checkout time
		orders.Fields.Add(&core.JSONField{
			Name: "lines",
		})

		orders.Fields.Add(&core.SelectField{
			Name:     "delivery_location",
			Required: true,
			Values:   []string{"Nairobi", "Outside Nairobi"},
		})

		minZero := float64(0)
		orders.Fields.Add(&core.NumberField{
			Name:    "subtotal",
			Min:     &minZero,
			OnlyInt: true,
		})
		orders.Fields.Add(&core.NumberField{
			Name:    "delivery_fee",
			Min:     &minZero,
			OnlyInt: true,
		})
		orders.Fields.Add(&core.NumberField{
			Name:     "total",
			Required: true,
			Min:      &minZero,
			OnlyInt:  true,
		})

		orders.Fields.Add(&core.SelectField{
			Name:     "status",
			Required: true,
			Values:   []string{"pending", "confirmed", "completed", "cancelled"},
		})

		orders.Indexes = []string{
			"CREATE UNIQUE INDEX idx_orders_number ON orders (order_number)",
			"CREATE INDEX idx_orders_status ON orders (status)",
		}

		return app.Save(orders)

	}, func(app core.App) error {
		// Rollback
		if collection, err := app.FindCollectionByNameOrId("orders"); err == nil {
			return app.Delete(collection)
		}
		return nil
	})
}
