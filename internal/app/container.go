// Package app provides the dependency injection container for the shop.
// This consolidates all service initialization in one place.
package app

import (
	"fmt"
	"html/template"

	"electroworld/internal/adapter/repository"
	domain "electroworld/internal/core"
	"electroworld/internal/service"
	"electroworld/pkg/broker"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
// This is the central place for Dependency Injection.
type Container struct {
	// PocketBase instance
	PB *pocketbase.PocketBase

	// Templates
	Templates *template.Template

	// Infrastructure
	Broker *broker.SegmentedBroker

	// Repositories (Data Access Layer)
	ProductRepo  domain.ProductRepository
	OrderRepo    domain.OrderRepository
	CartStore    domain.CartStore
	SettingsRepo domain.SettingsRepository

	// Domain Services (Business Logic)
	QuoteService    *service.QuoteService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	BookingService  *service.BookingService
	TradeInService  *service.TradeInService
	InvoiceService  *service.InvoiceService
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) (*Container, error) {
	c := &Container{
		PB: pb,
	}

	// 1. Event Broker
	c.Broker = broker.NewSegmentedBroker()

	// 2. Templates
	templates, err := InitTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to init templates: %w", err)
	}
	c.Templates = templates

	// 3. Repositories (Adapters)
	c.ProductRepo = repository.NewProductRepo(pb)
	c.OrderRepo = repository.NewOrderRepo(pb)
	c.CartStore = repository.NewCartStore(pb)
	c.SettingsRepo = repository.NewSettingsRepo(pb)

	// 4. Domain Services (inject repos + infrastructure)
	c.InvoiceService = service.NewInvoiceService(c.SettingsRepo)
	c.QuoteService = service.NewQuoteService()
	c.CartService = service.NewCartService(c.CartStore, c.ProductRepo, c.SettingsRepo)
	c.CheckoutService = service.NewCheckoutService(
		c.ProductRepo,
		c.OrderRepo,
		c.CartStore,
		c.SettingsRepo,
		c.InvoiceService,
		c.Broker,
	)
	c.BookingService = service.NewBookingService(c.SettingsRepo)
	c.TradeInService = service.NewTradeInService(c.SettingsRepo)

	return c, nil
}
