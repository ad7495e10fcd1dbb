package handlers

import (
	"log"

	"electroworld/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type ProductHandler struct {
	Products core.ProductRepository
}

// List returns the active merchandise catalog as JSON.
// GET /api/products?q=searchterm
func (h *ProductHandler) List(e *pbCore.RequestEvent) error {
	query := e.Request.URL.Query().Get("q")

	products, err := h.Products.FindActive(query)
	if err != nil {
		log.Printf("❌ [PRODUCTS] list failed: %v", err)
		return e.JSON(500, map[string]string{"error": "Failed to load products"})
	}
	if products == nil {
		products = []*core.Product{}
	}
	return e.JSON(200, products)
}
