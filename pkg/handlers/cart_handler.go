package handlers

import (
	"encoding/json"

	"electroworld/internal/core"
	"electroworld/internal/service"
	"electroworld/pkg/middleware"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type CartHandler struct {
	CartService *service.CartService
}

// cartResponse bundles the cart with its server-computed totals so the
// client never has to price anything itself.
func (h *CartHandler) cartResponse(e *pbCore.RequestEvent, cart *core.Cart) error {
	totals, err := h.CartService.Totals(cart)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to price cart"})
	}
	return e.JSON(200, map[string]interface{}{
		"cart":   cart,
		"totals": totals,
	})
}

// Get returns the current cart, reconciled against the live catalog.
// GET /api/cart
func (h *CartHandler) Get(e *pbCore.RequestEvent) error {
	cart, err := h.CartService.Get(middleware.CartTokenFrom(e))
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to load cart"})
	}
	return h.cartResponse(e, cart)
}

// Add puts one unit of a product into the cart.
// POST /api/cart/items {"productId": "..."}
func (h *CartHandler) Add(e *pbCore.RequestEvent) error {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil || body.ProductID == "" {
		return e.JSON(400, map[string]string{"error": "productId is required"})
	}

	cart, err := h.CartService.Add(middleware.CartTokenFrom(e), body.ProductID)
	if err != nil {
		return e.JSON(400, map[string]string{"error": "Product is not available"})
	}
	return h.cartResponse(e, cart)
}

// Remove drops a product line from the cart.
// DELETE /api/cart/items/{id}
func (h *CartHandler) Remove(e *pbCore.RequestEvent) error {
	productID := e.Request.PathValue("id")
	cart, err := h.CartService.Remove(middleware.CartTokenFrom(e), productID)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to update cart"})
	}
	return h.cartResponse(e, cart)
}

// SetQuantity updates one line's quantity. Values below 1 are ignored.
// PATCH /api/cart/items/{id} {"quantity": 3}
func (h *CartHandler) SetQuantity(e *pbCore.RequestEvent) error {
	productID := e.Request.PathValue("id")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid body"})
	}

	cart, err := h.CartService.SetQuantity(middleware.CartTokenFrom(e), productID, body.Quantity)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to update cart"})
	}
	return h.cartResponse(e, cart)
}

// SetDelivery records the delivery zone on the cart.
// PUT /api/cart/delivery {"deliveryLocation": "Nairobi"}
func (h *CartHandler) SetDelivery(e *pbCore.RequestEvent) error {
	var body struct {
		DeliveryLocation string `json:"deliveryLocation"`
	}
	if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid body"})
	}
	if body.DeliveryLocation != core.ZoneNairobi && body.DeliveryLocation != core.ZoneUpcountry {
		return e.JSON(400, map[string]string{"error": "Unknown delivery zone"})
	}

	cart, err := h.CartService.SetDeliveryLocation(middleware.CartTokenFrom(e), body.DeliveryLocation)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to update cart"})
	}
	return h.cartResponse(e, cart)
}

// SetContact snapshots the checkout contact form onto the cart.
// PUT /api/cart/contact
func (h *CartHandler) SetContact(e *pbCore.RequestEvent) error {
	var contact core.ContactInfo
	if err := json.NewDecoder(e.Request.Body).Decode(&contact); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid body"})
	}

	cart, err := h.CartService.SetContact(middleware.CartTokenFrom(e), contact)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to update cart"})
	}
	return h.cartResponse(e, cart)
}
