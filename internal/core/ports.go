package core

// ProductRepository defines data access for merchandise products.
type ProductRepository interface {
	GetByID(id string) (*Product, error)
	// FindActive returns active products, newest first. A non-empty query
	// filters by name/category substring (case-insensitive).
	FindActive(query string) ([]*Product, error)
}

// OrderRepository defines data access for checkout orders.
type OrderRepository interface {
	Create(order *Order) error
	GetByID(id string) (*Order, error)
	FindRecent(limit int) ([]*Order, error)
}

// CartStore persists cart snapshots keyed by an opaque client token.
// Load must return an empty cart (never an error) for a missing or corrupt
// snapshot so a stale client always recovers.
type CartStore interface {
	Load(token string) (*Cart, error)
	Save(token string, cart *Cart) error
	Clear(token string) error
}

// SettingsRepository loads the shop configuration.
type SettingsRepository interface {
	GetSettings() (*Settings, error)
}

// CheckoutRequest is the wire payload of POST /api/orders/checkout. The
// client sends its own fee and total; the server re-prices and rejects
// mismatches rather than charging a different amount.
type CheckoutRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Location         string `json:"location"`
	Cart             []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	} `json:"cart"`
	DeliveryLocation string `json:"deliveryLocation"`
	DeliveryFee      int    `json:"deliveryFee"`
	Total            int    `json:"total"`
}

// CheckoutResult mirrors the checkout response body.
type CheckoutResult struct {
	Success     bool   `json:"success"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
	InvoiceURL  string `json:"invoiceUrl,omitempty"`
}

// FieldErrors maps form field names to inline validation messages.
type FieldErrors map[string]string

// Has reports whether any field failed validation.
func (f FieldErrors) Has() bool {
	return len(f) > 0
}
