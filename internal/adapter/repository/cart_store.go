package repository

import (
	"encoding/json"
	"log"

	"electroworld/internal/core"

	"github.com/pocketbase/dbx"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// PBCartStore keeps one carts record per client token with the cart
// snapshot in a JSON column.
type PBCartStore struct {
	app pbCore.App
}

func NewCartStore(app pbCore.App) core.CartStore {
	return &PBCartStore{app: app}
}

func (r *PBCartStore) find(token string) (*pbCore.Record, error) {
	return r.app.FindFirstRecordByFilter("carts", "token = {:token}", dbx.Params{"token": token})
}

// Load returns the stored cart for token. A missing record or a corrupt
// snapshot both yield a fresh empty cart so stale clients always recover.
func (r *PBCartStore) Load(token string) (*core.Cart, error) {
	record, err := r.find(token)
	if err != nil {
		return &core.Cart{}, nil
	}

	cart := &core.Cart{}
	if raw := record.GetString("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), cart); err != nil {
			log.Printf("⚠️ [CART] corrupt snapshot for token %.8s, resetting: %v", token, err)
			return &core.Cart{}, nil
		}
	}
	return cart, nil
}

func (r *PBCartStore) Save(token string, cart *core.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	record, err := r.find(token)
	if err != nil {
		collection, err := r.app.FindCollectionByNameOrId("carts")
		if err != nil {
			return err
		}
		record = pbCore.NewRecord(collection)
		record.Set("token", token)
	}

	record.Set("data", string(data))
	return r.app.Save(record)
}

func (r *PBCartStore) Clear(token string) error {
	record, err := r.find(token)
	if err != nil {
		return nil // nothing stored, nothing to clear
	}
	return r.app.Delete(record)
}
