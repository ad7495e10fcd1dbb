package core

import "electroworld/internal/catalog"

// Product is one merchandise catalog item.
type Product struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category string `json:"category"` // Phones, Covers & Protectors, Laptops, Accessories
	Price    int    `json:"price"`    // whole KES
	Image    string `json:"image"`
	Active   bool   `json:"-"`
}

// ProductCategories is the fixed merchandise grouping, in display order.
var ProductCategories = []string{"Phones", "Covers & Protectors", "Laptops", "Accessories"}

// Delivery zones. The settings record carries the fee for each; the zone
// names themselves are fixed.
const (
	ZoneNairobi   = "Nairobi"
	ZoneUpcountry = "Outside Nairobi"
)

// ContactInfo is the checkout contact form snapshot.
type ContactInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"` // full delivery address
}

// CartLine is one quantity-keyed merchandise line. Quantity is always >= 1.
type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Cart is the client-held shopping state, mirrored to storage after every
// mutation. Lines keep insertion order.
type Cart struct {
	Lines            []CartLine  `json:"lines"`
	DeliveryLocation string      `json:"deliveryLocation"`
	Contact          ContactInfo `json:"contact"`
}

// Find returns the index of the line holding productID, or -1.
func (c *Cart) Find(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Price * line.Quantity
	}
	return total
}

// CartTotals is the priced summary of a cart for one delivery zone.
type CartTotals struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"deliveryFee"`
	GrandTotal  int `json:"grandTotal"`
}

// RepairSelection is one toggleable repair option inside a quote session.
type RepairSelection struct {
	Kind     catalog.RepairKind `json:"type"`
	Label    string             `json:"label"`
	Price    int                `json:"price"`
	Selected bool               `json:"selected"`
}

// Quote is a priced repair estimate for one device model. Totals, time and
// warranty are derived from the selection set on every call so they can
// never drift from it.
type Quote struct {
	Category   string            `json:"deviceType"`
	Brand      string            `json:"brand"`
	Model      string            `json:"model"`
	Intent     string            `json:"repairType"` // hardware or software
	Selections []RepairSelection `json:"repairs"`
}

// Empty reports whether the quote carries no repair options, i.e. the model
// was not found in the catalog.
func (q *Quote) Empty() bool {
	return len(q.Selections) == 0
}

// Selected returns the currently selected repair options, in quote order.
func (q *Quote) Selected() []RepairSelection {
	var out []RepairSelection
	for _, s := range q.Selections {
		if s.Selected {
			out = append(out, s)
		}
	}
	return out
}

// TotalCost sums the prices of the selected options.
func (q *Quote) TotalCost() int {
	total := 0
	for _, s := range q.Selections {
		if s.Selected {
			total += s.Price
		}
	}
	return total
}

// EstimatedTime is the repair duration in hours: 2h per selected option.
func (q *Quote) EstimatedTime() int {
	return len(q.Selected()) * 2
}

// Warranty returns the warranty term for the quoted device category.
// Phones get 2 months, everything else 1 month. Fixed policy.
func (q *Quote) Warranty() string {
	if q.Category == "phone" {
		return "2 months"
	}
	return "1 month"
}

// OrderLine is one purchased product inside an order, priced server-side.
type OrderLine struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is a confirmed checkout, persisted in the orders collection.
type Order struct {
	ID               string      `json:"id"`
	OrderNumber      string      `json:"order_number"`
	Customer         ContactInfo `json:"customer"`
	Lines            []OrderLine `json:"lines"`
	DeliveryLocation string      `json:"delivery_location"`
	Subtotal         int         `json:"subtotal"`
	DeliveryFee      int         `json:"delivery_fee"`
	Total            int         `json:"total"`
	Status           string      `json:"status"` // pending, confirmed, completed, cancelled
	Created          string      `json:"created"`
}

// BookingRequest is the repair appointment form. Transient: validated,
// rendered into a WhatsApp message, never persisted.
type BookingRequest struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

// TradeInRequest is the sell/trade-in form. Transient like BookingRequest.
type TradeInRequest struct {
	FullName             string `json:"fullName"`
	PhoneModel           string `json:"phoneModel"`
	Storage              string `json:"storage"`
	Condition            string `json:"condition"`
	ScreenIssues         string `json:"screenIssues"`
	BodyIssues           string `json:"bodyIssues"`
	BatteryHealth        string `json:"batteryHealth"`
	SellingOption        string `json:"sellingOption"` // sell or trade
	DesiredPhone         string `json:"desiredPhone"`
	DesiredCashAmount    string `json:"desiredCashAmount"`
	AdditionalCashNeeded string `json:"additionalCashNeeded"`
	ImageCount           int    `json:"imageCount"`
}

// Settings is the shop configuration loaded from the settings collection.
type Settings struct {
	ID              string `json:"id"`
	ShopName        string `json:"shop_name"`
	ContactEmail    string `json:"contact_email"`
	BookingWhatsApp string `json:"booking_whatsapp"`
	TradeInWhatsApp string `json:"tradein_whatsapp"`
	OrdersWhatsApp  string `json:"orders_whatsapp"`
	NairobiFee      int    `json:"nairobi_fee"`
	UpcountryFee    int    `json:"upcountry_fee"`
	PublicBaseURL   string `json:"public_base_url"`
	InvoiceSecret   string `json:"invoice_secret"`
}

// DeliveryFee resolves the fee for a delivery zone. Any zone other than
// Nairobi is charged the upcountry rate.
func (s *Settings) DeliveryFee(zone string) int {
	if zone == ZoneNairobi {
		return s.NairobiFee
	}
	return s.UpcountryFee
}
