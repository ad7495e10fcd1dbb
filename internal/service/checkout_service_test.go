package service

import (
	"strings"
	"testing"

	"electroworld/internal/core"
)

type recordingAnnouncer struct {
	orders []*core.Order
}

func (r *recordingAnnouncer) Announce(order *core.Order) {
	r.orders = append(r.orders, order)
}

func checkoutFixtures() (*CheckoutService, *memCartStore, *memOrderRepo, *recordingAnnouncer) {
	store := newMemCartStore()
	products := newMemProductRepo(
		&core.Product{ID: "p1", Name: "iPhone 13 Cover", Category: "Covers & Protectors", Price: 1500, Active: true},
		&core.Product{ID: "p2", Name: "Samsung Galaxy A54", Category: "Phones", Price: 38000, Active: true},
		&core.Product{ID: "p3", Name: "Discontinued Charger", Category: "Accessories", Price: 900, Active: false},
	)
	orders := &memOrderRepo{}
	announcer := &recordingAnnouncer{}
	settings := newMemSettingsRepo()
	svc := NewCheckoutService(products, orders, store, settings, NewInvoiceService(settings), announcer)
	return svc, store, orders, announcer
}

func validCheckout() *core.CheckoutRequest {
	req := &core.CheckoutRequest{
		Name:             "Jane Wanjiku",
		Phone:            "0712345678",
		Email:            "jane@example.com",
		Location:         "Westlands, Nairobi",
		DeliveryLocation: core.ZoneNairobi,
		DeliveryFee:      200,
		Total:            1500*2 + 200,
	}
	req.Cart = append(req.Cart, struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}{ID: "p1", Quantity: 2})
	return req
}

func TestCheckout_Success(t *testing.T) {
	svc, store, orders, announcer := checkoutFixtures()
	store.Save("tok", &core.Cart{Lines: []core.CartLine{{ProductID: "p1", Quantity: 2}}})

	result, fieldErrs, err := svc.Checkout("tok", validCheckout())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if fieldErrs.Has() {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if !result.Success {
		t.Fatal("result.Success = false; want true")
	}

	if len(orders.orders) != 1 {
		t.Fatalf("%d orders persisted; want 1", len(orders.orders))
	}
	order := orders.orders[0]
	if order.Subtotal != 3000 || order.DeliveryFee != 200 || order.Total != 3200 {
		t.Errorf("order totals = %d/%d/%d; want 3000/200/3200", order.Subtotal, order.DeliveryFee, order.Total)
	}
	if order.Status != "pending" {
		t.Errorf("order status = %q; want pending", order.Status)
	}
	if !strings.HasPrefix(order.OrderNumber, "EW-") {
		t.Errorf("order number %q missing EW- prefix", order.OrderNumber)
	}

	if !strings.HasPrefix(result.WhatsAppURL, "https://wa.me/254706234072?text=") {
		t.Errorf("WhatsAppURL = %q; want wa.me link to orders number", result.WhatsAppURL)
	}
	if !strings.Contains(result.InvoiceURL, "/invoice/"+order.ID+"?token=") {
		t.Errorf("InvoiceURL = %q; want signed link to order %s", result.InvoiceURL, order.ID)
	}

	// Cart is cleared and the order announced exactly once.
	if _, ok := store.carts["tok"]; ok {
		t.Error("cart must be cleared after a successful checkout")
	}
	if len(announcer.orders) != 1 {
		t.Errorf("announcer received %d orders; want 1", len(announcer.orders))
	}
}

func TestCheckout_ValidationErrors(t *testing.T) {
	svc, _, orders, _ := checkoutFixtures()

	tests := []struct {
		name    string
		mutate  func(*core.CheckoutRequest)
		field   string
	}{
		{"missing name", func(r *core.CheckoutRequest) { r.Name = "  " }, "name"},
		{"missing phone", func(r *core.CheckoutRequest) { r.Phone = "" }, "phone"},
		{"missing email", func(r *core.CheckoutRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *core.CheckoutRequest) { r.Email = "not-an-email" }, "email"},
		{"missing address", func(r *core.CheckoutRequest) { r.Location = "" }, "location"},
		{"empty cart", func(r *core.CheckoutRequest) { r.Cart = nil }, "cart"},
		{"zero quantity", func(r *core.CheckoutRequest) { r.Cart[0].Quantity = 0 }, "cart"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckout()
			tt.mutate(req)
			result, fieldErrs, err := svc.Checkout("tok", req)
			if err != nil {
				t.Fatalf("Checkout: %v", err)
			}
			if result != nil {
				t.Error("expected nil result on validation failure")
			}
			if _, ok := fieldErrs[tt.field]; !ok {
				t.Errorf("field errors = %v; want entry for %q", fieldErrs, tt.field)
			}
		})
	}
	if len(orders.orders) != 0 {
		t.Errorf("%d orders persisted despite validation failures", len(orders.orders))
	}
}

func TestCheckout_RejectsPriceMismatch(t *testing.T) {
	svc, store, orders, _ := checkoutFixtures()
	store.Save("tok", &core.Cart{Lines: []core.CartLine{{ProductID: "p1", Quantity: 2}}})

	tests := []struct {
		name   string
		mutate func(*core.CheckoutRequest)
	}{
		{"stale total", func(r *core.CheckoutRequest) { r.Total -= 500 }},
		{"wrong fee", func(r *core.CheckoutRequest) { r.DeliveryFee = 0 }},
		{"zone fee mismatch", func(r *core.CheckoutRequest) {
			// Upcountry zone but Nairobi fee claimed.
			r.DeliveryLocation = core.ZoneUpcountry
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckout()
			tt.mutate(req)
			result, fieldErrs, err := svc.Checkout("tok", req)
			if err != nil {
				t.Fatalf("Checkout: %v", err)
			}
			if result != nil {
				t.Error("expected rejection, got a result")
			}
			if _, ok := fieldErrs["total"]; !ok {
				t.Errorf("field errors = %v; want entry for total", fieldErrs)
			}
		})
	}
	if len(orders.orders) != 0 {
		t.Errorf("%d orders persisted despite price mismatches", len(orders.orders))
	}
	if _, ok := store.carts["tok"]; !ok {
		t.Error("cart must survive a rejected checkout")
	}
}

func TestCheckout_RejectsUnknownProduct(t *testing.T) {
	svc, _, _, _ := checkoutFixtures()

	for _, id := range []string{"ghost", "p3"} {
		req := validCheckout()
		req.Cart[0].ID = id
		result, fieldErrs, err := svc.Checkout("tok", req)
		if err != nil {
			t.Fatalf("Checkout(%s): %v", id, err)
		}
		if result != nil {
			t.Errorf("product %s: expected rejection", id)
		}
		if _, ok := fieldErrs["cart"]; !ok {
			t.Errorf("product %s: field errors = %v; want entry for cart", id, fieldErrs)
		}
	}
}

func TestInvoiceTokenRoundTrip(t *testing.T) {
	svc := NewInvoiceService(newMemSettingsRepo())

	token, err := svc.SignToken("order42")
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	orderID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if orderID != "order42" {
		t.Errorf("VerifyToken = %q; want order42", orderID)
	}

	other := newMemSettingsRepo()
	other.settings.InvoiceSecret = "other-secret"
	if _, err := NewInvoiceService(other).VerifyToken(token); err == nil {
		t.Error("token verified under the wrong secret")
	}
	if _, err := svc.VerifyToken("not-a-token"); err == nil {
		t.Error("garbage token verified")
	}
}
