package handlers

import (
	"encoding/json"

	"electroworld/internal/catalog"
	"electroworld/internal/core"
	"electroworld/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type RepairHandler struct {
	QuoteService   *service.QuoteService
	BookingService *service.BookingService
}

// Catalog returns the device tree for the estimator dropdowns: categories,
// their brands and each brand's models, plus the repair labels.
// GET /api/repairs/catalog
func (h *RepairHandler) Catalog(e *pbCore.RequestEvent) error {
	tree := map[string]map[string][]string{}
	for _, cat := range catalog.Categories() {
		tree[cat] = map[string][]string{}
		for _, brand := range catalog.Brands(cat) {
			tree[cat][brand] = catalog.Models(cat, brand)
		}
	}

	labels := map[string]string{}
	for _, kind := range catalog.AllKinds() {
		labels[string(kind)] = kind.Label()
	}

	return e.JSON(200, map[string]interface{}{
		"devices": tree,
		"labels":  labels,
	})
}

type quoteRequest struct {
	DeviceType string               `json:"deviceType"`
	Brand      string               `json:"brand"`
	Model      string               `json:"model"`
	RepairType string               `json:"repairType"` // hardware or software
	Selected   []catalog.RepairKind `json:"selected,omitempty"`
}

// Quote builds a priced estimate for one device. When the client sends a
// selected set (after toggling options) the quote is re-derived from it.
// POST /api/repairs/quote
func (h *RepairHandler) Quote(e *pbCore.RequestEvent) error {
	var req quoteRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	quote := h.QuoteService.BuildQuote(req.DeviceType, req.Brand, req.Model, req.RepairType)
	if quote.Empty() {
		return e.JSON(404, map[string]string{"error": "Device not found in the repair catalog"})
	}
	if req.Selected != nil {
		h.QuoteService.ApplySelections(quote, req.Selected)
	}

	return e.JSON(200, map[string]interface{}{
		"quote":         quote,
		"totalCost":     quote.TotalCost(),
		"estimatedTime": quote.EstimatedTime(),
		"warranty":      quote.Warranty(),
	})
}

type bookRequest struct {
	quoteRequest
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// Book validates the appointment form and returns the WhatsApp hand-off
// link carrying the quote.
// POST /api/repairs/book
func (h *RepairHandler) Book(e *pbCore.RequestEvent) error {
	var req bookRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	quote := h.QuoteService.BuildQuote(req.DeviceType, req.Brand, req.Model, req.RepairType)
	if quote.Empty() {
		return e.JSON(404, map[string]string{"error": "Device not found in the repair catalog"})
	}
	if req.Selected != nil {
		h.QuoteService.ApplySelections(quote, req.Selected)
	}

	link, fieldErrs, err := h.BookingService.Book(core.BookingRequest{
		Name: req.Name,
		Date: req.Date,
		Time: req.Time,
	}, quote)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Booking failed, please try again"})
	}
	if fieldErrs.Has() {
		return e.JSON(400, map[string]interface{}{"errors": fieldErrs})
	}
	return e.JSON(200, map[string]string{"whatsappUrl": link})
}
