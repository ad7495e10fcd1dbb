package app

import (
	"os"

	internalApp "electroworld/internal/app"
	"electroworld/pkg/handlers"
	"electroworld/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes configures all application routes
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {

		// ---------------------------------------------------------
		// 1. STATIC FILES
		// ---------------------------------------------------------
		se.Router.GET("/assets/{path...}", apis.Static(os.DirFS("./assets"), false))

		// ---------------------------------------------------------
		// 2. GLOBAL MIDDLEWARE
		// ---------------------------------------------------------
		se.Router.BindFunc(middleware.SettingsMiddleware(c.SettingsRepo))
		se.Router.BindFunc(middleware.CartToken())

		// ---------------------------------------------------------
		// 3. HANDLERS SETUP (Using Container dependencies)
		// ---------------------------------------------------------
		public := &handlers.PublicHandler{
			Templates:      c.Templates,
			Products:       c.ProductRepo,
			Orders:         c.OrderRepo,
			InvoiceService: c.InvoiceService,
		}
		products := &handlers.ProductHandler{
			Products: c.ProductRepo,
		}
		cart := &handlers.CartHandler{
			CartService: c.CartService,
		}
		checkout := &handlers.CheckoutHandler{
			CheckoutService: c.CheckoutService,
		}
		repairs := &handlers.RepairHandler{
			QuoteService:   c.QuoteService,
			BookingService: c.BookingService,
		}
		tradein := &handlers.TradeInHandler{
			TradeInService: c.TradeInService,
		}
		admin := &handlers.AdminHandler{
			Orders: c.OrderRepo,
			Broker: c.Broker,
		}

		// ---------------------------------------------------------
		// 4. PUBLIC PAGES
		// ---------------------------------------------------------
		se.Router.GET("/", public.Index)
		se.Router.GET("/invoice/{id}", public.ShowInvoice)

		// ---------------------------------------------------------
		// 5. STORE API
		// ---------------------------------------------------------
		se.Router.GET("/api/products", products.List)

		se.Router.GET("/api/cart", cart.Get)
		se.Router.POST("/api/cart/items", cart.Add)
		se.Router.DELETE("/api/cart/items/{id}", cart.Remove)
		se.Router.PATCH("/api/cart/items/{id}", cart.SetQuantity)
		se.Router.PUT("/api/cart/delivery", cart.SetDelivery)
		se.Router.PUT("/api/cart/contact", cart.SetContact)

		se.Router.POST("/api/orders/checkout", checkout.Checkout)
		se.Router.GET("/api/orders/{id}/stream", admin.StreamOrderStatus)

		// ---------------------------------------------------------
		// 6. REPAIRS & TRADE-IN API
		// ---------------------------------------------------------
		se.Router.GET("/api/repairs/catalog", repairs.Catalog)
		se.Router.POST("/api/repairs/quote", repairs.Quote)
		se.Router.POST("/api/repairs/book", repairs.Book)

		se.Router.POST("/api/tradein", tradein.Submit)
		se.Router.POST("/api/tradein/validate/{step}", tradein.ValidateStep)

		// ---------------------------------------------------------
		// 7. ADMIN (superuser auth via pb_auth cookie)
		// ---------------------------------------------------------
		adminGroup := se.Router.Group("/admin")
		adminGroup.BindFunc(middleware.RequireAdmin(pb))
		adminGroup.GET("/orders", admin.ListOrders)

		apiAdmin := se.Router.Group("/api/admin")
		apiAdmin.BindFunc(middleware.RequireAdmin(pb))
		apiAdmin.GET("/orders/stream", admin.StreamOrders)

		return se.Next()
	})
}
