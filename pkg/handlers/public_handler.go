package handlers

import (
	"html/template"

	"electroworld/internal/catalog"
	"electroworld/internal/core"
	"electroworld/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PublicHandler struct {
	Templates      *template.Template
	Products       core.ProductRepository
	Orders         core.OrderRepository
	InvoiceService *service.InvoiceService
}

// Index renders the storefront with the merchandise and repair catalogs.
// GET /
func (h *PublicHandler) Index(e *pbCore.RequestEvent) error {
	products, _ := h.Products.FindActive("")

	data := map[string]interface{}{
		"Settings":   e.Get("Settings"),
		"Products":   products,
		"Categories": core.ProductCategories,
		"DeviceTypes": catalog.Categories(),
	}
	return RenderPage(h.Templates, e, "layouts/base.html", "public/index.html", data)
}

// ShowInvoice renders the customer-facing invoice for one order. Access is
// gated by the signed token issued at checkout.
// GET /invoice/{id}?token=...
func (h *PublicHandler) ShowInvoice(e *pbCore.RequestEvent) error {
	orderID := e.Request.PathValue("id")
	if orderID == "" {
		return e.String(404, "Invoice not found")
	}

	tokenOrderID, err := h.InvoiceService.VerifyToken(e.Request.URL.Query().Get("token"))
	if err != nil || tokenOrderID != orderID {
		return e.String(404, "Invoice not found or link expired")
	}

	order, err := h.Orders.GetByID(orderID)
	if err != nil {
		return e.String(404, "Invoice not found or link expired")
	}

	data := map[string]interface{}{
		"Settings": e.Get("Settings"),
		"Order":    order,
	}
	return RenderPage(h.Templates, e, "layouts/base.html", "public/invoice_view.html", data)
}
