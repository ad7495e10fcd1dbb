package repository

import (
	"encoding/json"
	"log"

	"electroworld/internal/core"

	"github.com/spf13/cast"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBOrderRepo struct {
	app pbCore.App
}

func NewOrderRepo(app pbCore.App) core.OrderRepository {
	return &PBOrderRepo{app: app}
}

// Mapping helper: Record -> Domain Model
func (r *PBOrderRepo) toDomain(record *pbCore.Record) *core.Order {
	order := &core.Order{
		ID:          record.Id,
		OrderNumber: record.GetString("order_number"),
		Customer: core.ContactInfo{
			Name:     record.GetString("customer_name"),
			Phone:    record.GetString("customer_phone"),
			Email:    record.GetString("customer_email"),
			Location: record.GetString("customer_location"),
		},
		DeliveryLocation: record.GetString("delivery_location"),
		Subtotal:         cast.ToInt(record.Get("subtotal")),
		DeliveryFee:      cast.ToInt(record.Get("delivery_fee")),
		Total:            cast.ToInt(record.Get("total")),
		Status:           record.GetString("status"),
		Created:          record.GetString("created"),
	}

	// Lines live in a JSON column; a decode failure leaves them empty
	// rather than failing the whole order.
	if raw := record.GetString("lines"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &order.Lines); err != nil {
			log.Printf("⚠️ [ORDERS] corrupt lines on order %s: %v", record.Id, err)
		}
	}
	return order
}

func (r *PBOrderRepo) Create(o *core.Order) error {
	collection, err := r.app.FindCollectionByNameOrId("orders")
	if err != nil {
		return err
	}

	linesJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("order_number", o.OrderNumber)
	record.Set("customer_name", o.Customer.Name)
	record.Set("customer_phone", o.Customer.Phone)
	record.Set("customer_email", o.Customer.Email)
	record.Set("customer_location", o.Customer.Location)
	record.Set("lines", string(linesJSON))
	record.Set("delivery_location", o.DeliveryLocation)
	record.Set("subtotal", o.Subtotal)
	record.Set("delivery_fee", o.DeliveryFee)
	record.Set("total", o.Total)
	record.Set("status", o.Status)

	if err := r.app.Save(record); err != nil {
		return err
	}

	o.ID = record.Id
	o.Created = record.GetString("created")
	return nil
}

func (r *PBOrderRepo) GetByID(id string) (*core.Order, error) {
	record, err := r.app.FindRecordById("orders", id)
	if err != nil {
		return nil, err
	}
	return r.toDomain(record), nil
}

func (r *PBOrderRepo) FindRecent(limit int) ([]*core.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	records, err := r.app.FindRecordsByFilter("orders", "id != ''", "-created", limit, 0, nil)
	if err != nil {
		return nil, err
	}

	var orders []*core.Order
	for _, rec := range records {
		orders = append(orders, r.toDomain(rec))
	}
	return orders, nil
}
