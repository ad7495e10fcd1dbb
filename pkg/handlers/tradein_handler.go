package handlers

import (
	"encoding/json"
	"strconv"

	"electroworld/internal/core"
	"electroworld/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type TradeInHandler struct {
	TradeInService *service.TradeInService
}

// ValidateStep gates the wizard navigation server-side.
// POST /api/tradein/validate/{step}
func (h *TradeInHandler) ValidateStep(e *pbCore.RequestEvent) error {
	step, err := strconv.Atoi(e.Request.PathValue("step"))
	if err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid step"})
	}

	var req core.TradeInRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	if errs := h.TradeInService.ValidateStep(step, req); errs.Has() {
		return e.JSON(400, map[string]interface{}{"errors": errs})
	}
	return e.JSON(200, map[string]bool{"ok": true})
}

// Submit validates the full trade-in form and returns the WhatsApp link.
// POST /api/tradein
func (h *TradeInHandler) Submit(e *pbCore.RequestEvent) error {
	var req core.TradeInRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	link, fieldErrs, err := h.TradeInService.Submit(req)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Submission failed, please try again"})
	}
	if fieldErrs.Has() {
		return e.JSON(400, map[string]interface{}{"errors": fieldErrs})
	}
	return e.JSON(200, map[string]string{"whatsappUrl": link})
}
