package whatsapp

import (
	"strings"
	"testing"

	"electroworld/internal/catalog"
	"electroworld/internal/core"
)

func TestLink(t *testing.T) {
	tests := []struct {
		phone    string
		message  string
		expected string
	}{
		{"+254706234072", "hello", "https://wa.me/254706234072?text=hello"},
		{"254706234072", "hello", "https://wa.me/254706234072?text=hello"},
		{"+254 799 654 737", "hi", "https://wa.me/254799654737?text=hi"},
	}

	for _, tt := range tests {
		if got := Link(tt.phone, tt.message); got != tt.expected {
			t.Errorf("Link(%q, %q) = %q; want %q", tt.phone, tt.message, got, tt.expected)
		}
	}
}

func TestLink_EncodesMessage(t *testing.T) {
	link := Link("+254706234072", "Total Cost: KES 9,500 & more")

	if strings.Contains(link, " ") {
		t.Errorf("link contains raw spaces: %q", link)
	}
	if strings.Contains(link, "&text") {
		t.Errorf("unexpected second query parameter in %q", link)
	}
	if !strings.HasPrefix(link, "https://wa.me/254706234072?text=") {
		t.Errorf("unexpected link prefix: %q", link)
	}
	if !strings.Contains(link, "KES+9%2C500") {
		t.Errorf("message not query-encoded: %q", link)
	}
}

func TestBookingMessage(t *testing.T) {
	quote := &core.Quote{
		Category: "phone",
		Brand:    "Apple",
		Model:    "iPhone 11",
		Intent:   "hardware",
		Selections: []core.RepairSelection{
			{Kind: catalog.ScreenRepair, Label: "Screen Repair", Price: 5500, Selected: true},
			{Kind: catalog.BatteryReplacement, Label: "Battery Replacement", Price: 4000, Selected: true},
			{Kind: catalog.BackGlassRepair, Label: "Back Glass Repair", Price: 4500, Selected: false},
		},
	}
	req := core.BookingRequest{Name: "Jane Wanjiku", Date: "2026-09-04", Time: "10:30"}

	msg := BookingMessage(req, quote)

	for _, want := range []string{
		"Name: Jane Wanjiku",
		"Date: Friday, 4 September 2026",
		"Time: 10:30",
		"Type: Phone",
		"Brand: Apple",
		"Model: iPhone 11",
		"• Screen Repair - KES 5,500",
		"• Battery Replacement - KES 4,000",
		"*Total Cost: KES 9,500*",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("booking message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Back Glass Repair") {
		t.Error("booking message should not list unselected repairs")
	}
}

func TestTradeInMessage(t *testing.T) {
	sell := core.TradeInRequest{
		FullName:          "Brian Otieno",
		PhoneModel:        "iPhone 13",
		Storage:           "128GB",
		Condition:         "Good",
		ScreenIssues:      "No issues",
		BodyIssues:        "Minor scratches",
		BatteryHealth:     "87",
		SellingOption:     "sell",
		DesiredCashAmount: "45000",
		ImageCount:        4,
	}

	msg := TradeInMessage(sell)
	for _, want := range []string{
		"*Name:* Brian Otieno",
		"*Selling Option:* Sell for Cash",
		"*Desired Amount:* Ksh45000",
		"attach 4 images",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("sell message missing %q", want)
		}
	}

	trade := sell
	trade.SellingOption = "trade"
	trade.DesiredPhone = "iPhone 15"
	trade.AdditionalCashNeeded = "20000"

	msg = TradeInMessage(trade)
	for _, want := range []string{
		"*Selling Option:* Trade In",
		"*Desired Phone:* iPhone 15",
		"*Additional Cash to Add:* Ksh20000",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("trade message missing %q", want)
		}
	}
}

func TestOrderMessage(t *testing.T) {
	order := &core.Order{
		OrderNumber: "EW-20260827-001",
		Customer: core.ContactInfo{
			Name:     "Alice Njeri",
			Phone:    "0712345678",
			Email:    "alice@example.com",
			Location: "Moi Avenue, Nairobi",
		},
		Lines: []core.OrderLine{
			{ProductID: "p1", Name: "iPhone 12 Cover", Price: 1200, Quantity: 2},
			{ProductID: "p2", Name: "USB-C Charger", Price: 2500, Quantity: 1},
		},
		DeliveryLocation: core.ZoneNairobi,
		Subtotal:         4900,
		DeliveryFee:      200,
		Total:            5100,
	}

	msg := OrderMessage(order)
	for _, want := range []string{
		"*NEW ORDER EW-20260827-001*",
		"Name: Alice Njeri",
		"• iPhone 12 Cover x 2 - Ksh 2,400",
		"• USB-C Charger x 1 - Ksh 2,500",
		"*Delivery:* Nairobi (Ksh 200)",
		"*Total to Pay: Ksh 5,100*",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("order message missing %q:\n%s", want, msg)
		}
	}
}
