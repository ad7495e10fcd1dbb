package handlers

import (
	"encoding/json"
	"log"

	"electroworld/internal/core"
	"electroworld/internal/service"
	"electroworld/pkg/middleware"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type CheckoutHandler struct {
	CheckoutService *service.CheckoutService
}

// Checkout turns the submitted cart into an order.
// POST /api/orders/checkout
func (h *CheckoutHandler) Checkout(e *pbCore.RequestEvent) error {
	var req core.CheckoutRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	result, fieldErrs, err := h.CheckoutService.Checkout(middleware.CartTokenFrom(e), &req)
	if err != nil {
		log.Printf("❌ [CHECKOUT] %v", err)
		return e.JSON(500, map[string]interface{}{
			"success": false,
			"error":   "Checkout failed, please try again",
		})
	}
	if fieldErrs.Has() {
		return e.JSON(400, map[string]interface{}{
			"success": false,
			"errors":  fieldErrs,
		})
	}
	return e.JSON(200, result)
}
