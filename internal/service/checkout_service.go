package service

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"electroworld/internal/core"
	"electroworld/pkg/whatsapp"
)

// OrderAnnouncer pushes order lifecycle events to live listeners. The SSE
// broker implements it; a nil announcer disables the events.
type OrderAnnouncer interface {
	Announce(order *core.Order)
}

// CheckoutService turns a cart into a persisted order. Pricing is
// server-authoritative: the client's claimed fee and total are checked
// against a re-priced cart and mismatches are rejected.
type CheckoutService struct {
	products  core.ProductRepository
	orders    core.OrderRepository
	carts     core.CartStore
	settings  core.SettingsRepository
	invoices  *InvoiceService
	announcer OrderAnnouncer
}

func NewCheckoutService(
	products core.ProductRepository,
	orders core.OrderRepository,
	carts core.CartStore,
	settings core.SettingsRepository,
	invoices *InvoiceService,
	announcer OrderAnnouncer,
) *CheckoutService {
	return &CheckoutService{
		products:  products,
		orders:    orders,
		carts:     carts,
		settings:  settings,
		invoices:  invoices,
		announcer: announcer,
	}
}

// Validate checks the contact form and cart shape of a checkout request.
func (s *CheckoutService) Validate(req *core.CheckoutRequest) core.FieldErrors {
	errs := core.FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		errs["email"] = "Enter a valid email address"
	}
	if strings.TrimSpace(req.Location) == "" {
		errs["location"] = "Delivery address is required"
	}
	if len(req.Cart) == 0 {
		errs["cart"] = "Cart is empty"
	}
	for _, line := range req.Cart {
		if line.Quantity < 1 {
			errs["cart"] = "Invalid quantity"
			break
		}
	}
	return errs
}

// Checkout validates the request, re-prices it, persists the order and
// clears the cart. On success the result carries the WhatsApp deep link
// for the shop and the signed invoice URL for the customer.
func (s *CheckoutService) Checkout(token string, req *core.CheckoutRequest) (*core.CheckoutResult, core.FieldErrors, error) {
	if errs := s.Validate(req); errs.Has() {
		return nil, errs, nil
	}

	settings, err := s.settings.GetSettings()
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}

	// Re-price every line from the catalog. Client prices are ignored;
	// unknown or inactive products fail the whole checkout.
	var lines []core.OrderLine
	subtotal := 0
	for _, item := range req.Cart {
		product, err := s.products.GetByID(item.ID)
		if err != nil || product == nil || !product.Active {
			return nil, core.FieldErrors{"cart": fmt.Sprintf("Product %s is no longer available", item.ID)}, nil
		}
		lines = append(lines, core.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
		subtotal += product.Price * item.Quantity
	}

	fee := settings.DeliveryFee(req.DeliveryLocation)
	total := subtotal + fee
	if req.DeliveryFee != fee || req.Total != total {
		log.Printf("⚠️ [CHECKOUT] price mismatch: client fee=%d total=%d, server fee=%d total=%d",
			req.DeliveryFee, req.Total, fee, total)
		return nil, core.FieldErrors{"total": "Order total is out of date, please refresh and retry"}, nil
	}

	order := &core.Order{
		OrderNumber: newOrderNumber(),
		Customer: core.ContactInfo{
			Name:     strings.TrimSpace(req.Name),
			Phone:    strings.TrimSpace(req.Phone),
			Email:    strings.TrimSpace(req.Email),
			Location: strings.TrimSpace(req.Location),
		},
		Lines:            lines,
		DeliveryLocation: req.DeliveryLocation,
		Subtotal:         subtotal,
		DeliveryFee:      fee,
		Total:            total,
		Status:           "pending",
	}
	if err := s.orders.Create(order); err != nil {
		return nil, nil, fmt.Errorf("create order: %w", err)
	}
	log.Printf("✅ [CHECKOUT] order %s created: %d item(s), total %d", order.OrderNumber, len(order.Lines), order.Total)

	// The cart is only cleared once the order is safely stored.
	if err := s.carts.Clear(token); err != nil {
		log.Printf("⚠️ [CHECKOUT] failed to clear cart %.8s: %v", token, err)
	}

	invoiceURL, err := s.invoices.InvoiceURL(settings.PublicBaseURL, order.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("invoice link: %w", err)
	}

	if s.announcer != nil {
		s.announcer.Announce(order)
	}

	return &core.CheckoutResult{
		Success:     true,
		WhatsAppURL: whatsapp.Link(settings.OrdersWhatsApp, whatsapp.OrderMessage(order)),
		InvoiceURL:  invoiceURL,
	}, nil, nil
}

// newOrderNumber builds a human-readable order reference like
// EW-20260827-4821.
func newOrderNumber() string {
	return fmt.Sprintf("EW-%s-%04d", time.Now().Format("20060102"), rand.Intn(10000))
}
