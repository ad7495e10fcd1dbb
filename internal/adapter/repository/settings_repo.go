package repository

import (
	"electroworld/internal/core"

	"github.com/spf13/cast"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBSettingsRepo struct {
	app pbCore.App
}

func NewSettingsRepo(app pbCore.App) core.SettingsRepository {
	return &PBSettingsRepo{app: app}
}

// defaultSettings covers a fresh install before the seed migration ran.
func defaultSettings() *core.Settings {
	return &core.Settings{
		ShopName:        "ElectroWorld",
		ContactEmail:    "electroworldke@gmail.com",
		BookingWhatsApp: "+254706234072",
		TradeInWhatsApp: "+254799654737",
		OrdersWhatsApp:  "+254706234072",
		NairobiFee:      200,
		UpcountryFee:    400,
		PublicBaseURL:   "http://localhost:8090",
		InvoiceSecret:   "change-me-in-admin",
	}
}

// GetSettings loads the single settings record, falling back to defaults
// when the collection is empty.
func (r *PBSettingsRepo) GetSettings() (*core.Settings, error) {
	records, err := r.app.FindRecordsByFilter("settings", "id != ''", "-created", 1, 0, nil)
	if err != nil || len(records) == 0 {
		return defaultSettings(), nil
	}

	record := records[0]
	s := defaultSettings()
	s.ID = record.Id
	if v := record.GetString("shop_name"); v != "" {
		s.ShopName = v
	}
	if v := record.GetString("contact_email"); v != "" {
		s.ContactEmail = v
	}
	if v := record.GetString("booking_whatsapp"); v != "" {
		s.BookingWhatsApp = v
	}
	if v := record.GetString("tradein_whatsapp"); v != "" {
		s.TradeInWhatsApp = v
	}
	if v := record.GetString("orders_whatsapp"); v != "" {
		s.OrdersWhatsApp = v
	}
	if v := cast.ToInt(record.Get("nairobi_fee")); v > 0 {
		s.NairobiFee = v
	}
	if v := cast.ToInt(record.Get("upcountry_fee")); v > 0 {
		s.UpcountryFee = v
	}
	if v := record.GetString("public_base_url"); v != "" {
		s.PublicBaseURL = v
	}
	if v := record.GetString("invoice_secret"); v != "" {
		s.InvoiceSecret = v
	}
	return s, nil
}
