package whatsapp

import (
	"fmt"
	"strings"
	"time"

	"electroworld/internal/core"
	"electroworld/pkg/money"
)

// BookingMessage renders the repair appointment request sent to the shop's
// booking number. The template is deterministic so the same quote and form
// always produce the same text.
func BookingMessage(req core.BookingRequest, quote *core.Quote) string {
	var lines []string
	for _, sel := range quote.Selected() {
		lines = append(lines, fmt.Sprintf("• %s - %s", sel.Label, money.KES(sel.Price)))
	}

	date := req.Date
	if parsed, err := time.Parse("2006-01-02", req.Date); err == nil {
		date = parsed.Format("Monday, 2 January 2006")
	}

	return fmt.Sprintf(`🔧 *REPAIR BOOKING REQUEST*

👤 *Customer Details:*
Name: %s
Date: %s
Time: %s

📱 *Device Information:*
Type: %s
Brand: %s
Model: %s
Repair Category: %s

🛠️ *Repairs Required:*
%s

💰 *Total Cost: %s*

Please confirm this appointment. Thank you!`,
		req.Name, date, req.Time,
		capitalize(quote.Category), quote.Brand, quote.Model, quote.Intent,
		strings.Join(lines, "\n"),
		money.KES(quote.TotalCost()),
	)
}

// TradeInMessage renders the sell/trade-in lead. Device photos cannot travel
// inside a deep link, so the message instructs the customer to attach them
// in the chat.
func TradeInMessage(req core.TradeInRequest) string {
	var b strings.Builder

	b.WriteString("📱 *Trade-In / Sell Request* 📱\n\n")
	fmt.Fprintf(&b, "👤 *Name:* %s\n", req.FullName)
	fmt.Fprintf(&b, "📱 *Current Phone:* %s\n", req.PhoneModel)
	fmt.Fprintf(&b, "💾 *Storage:* %s\n", req.Storage)
	fmt.Fprintf(&b, "🔧 *Condition:* %s\n", req.Condition)
	fmt.Fprintf(&b, "🖥️ *Screen Issues:* %s\n", req.ScreenIssues)
	fmt.Fprintf(&b, "📦 *Body Issues:* %s\n", req.BodyIssues)
	fmt.Fprintf(&b, "🔋 *Battery Health:* %s%%\n", req.BatteryHealth)

	if req.SellingOption == "sell" {
		b.WriteString("💵 *Selling Option:* Sell for Cash\n")
		fmt.Fprintf(&b, "💰 *Desired Amount:* Ksh%s\n", req.DesiredCashAmount)
	} else {
		b.WriteString("🔄 *Selling Option:* Trade In\n")
		fmt.Fprintf(&b, "🆕 *Desired Phone:* %s\n", req.DesiredPhone)
		fmt.Fprintf(&b, "➕ *Additional Cash to Add:* Ksh%s\n", req.AdditionalCashNeeded)
	}

	fmt.Fprintf(&b, "\n📎 *ACTION REQUIRED: Please attach %d images of your device.*\n", req.ImageCount)
	b.WriteString("📸 The photos you uploaded (front, back, sides, damage) should be sent in this chat now.\n")
	b.WriteString("\n⚠️ *Note:* Prices are starting points. Final value depends on negotiation with the Engineer.")

	return b.String()
}

// OrderMessage renders the order confirmation forwarded to the shop's orders
// number after a successful checkout.
func OrderMessage(order *core.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *NEW ORDER %s*\n\n", order.OrderNumber)
	b.WriteString("👤 *Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", order.Customer.Phone)
	fmt.Fprintf(&b, "Email: %s\n", order.Customer.Email)
	fmt.Fprintf(&b, "Address: %s\n", order.Customer.Location)

	b.WriteString("\n📦 *Items:*\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "• %s x %d - %s\n", line.Name, line.Quantity, money.Ksh(line.Price*line.Quantity))
	}

	fmt.Fprintf(&b, "\n🚚 *Delivery:* %s (%s)\n", order.DeliveryLocation, money.Ksh(order.DeliveryFee))
	fmt.Fprintf(&b, "💰 *Total to Pay: %s*", money.Ksh(order.Total))

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
