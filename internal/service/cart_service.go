package service

import (
	"fmt"
	"log"

	"electroworld/internal/core"
)

// CartService mutates carts and mirrors every change to the CartStore so a
// returning client always sees its last state.
type CartService struct {
	store    core.CartStore
	products core.ProductRepository
	settings core.SettingsRepository
}

func NewCartService(store core.CartStore, products core.ProductRepository, settings core.SettingsRepository) *CartService {
	return &CartService{store: store, products: products, settings: settings}
}

// Get loads the cart for token and reconciles it against the live catalog:
// lines whose product no longer exists (or was deactivated) are dropped and
// the cleaned cart is saved back.
func (s *CartService) Get(token string) (*core.Cart, error) {
	cart, err := s.store.Load(token)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	kept := cart.Lines[:0]
	dropped := 0
	for _, line := range cart.Lines {
		product, err := s.products.GetByID(line.ProductID)
		if err != nil || product == nil || !product.Active {
			dropped++
			continue
		}
		// Re-price from the catalog so a price change propagates.
		line.Name = product.Name
		line.Price = product.Price
		kept = append(kept, line)
	}
	cart.Lines = kept

	if dropped > 0 {
		log.Printf("🧹 [CART] dropped %d stale line(s) for token %.8s", dropped, token)
		if err := s.store.Save(token, cart); err != nil {
			return nil, fmt.Errorf("save reconciled cart: %w", err)
		}
	}
	return cart, nil
}

// Add inserts productID with quantity 1, or bumps the existing line.
func (s *CartService) Add(token, productID string) (*core.Cart, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", productID, err)
	}
	if product == nil || !product.Active {
		return nil, fmt.Errorf("product %s is not available", productID)
	}

	cart, err := s.store.Load(token)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Lines[i].Quantity++
	} else {
		cart.Lines = append(cart.Lines, core.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		})
	}

	if err := s.store.Save(token, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	log.Printf("🛒 [CART] added %s for token %.8s", product.Name, token)
	return cart, nil
}

// Remove deletes the line holding productID. Unknown IDs are a no-op.
func (s *CartService) Remove(token, productID string) (*core.Cart, error) {
	cart, err := s.store.Load(token)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		if err := s.store.Save(token, cart); err != nil {
			return nil, fmt.Errorf("save cart: %w", err)
		}
	}
	return cart, nil
}

// SetQuantity sets the quantity of an existing line. Values below 1 are
// ignored; removal is explicit via Remove.
func (s *CartService) SetQuantity(token, productID string, quantity int) (*core.Cart, error) {
	cart, err := s.store.Load(token)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if quantity < 1 {
		return cart, nil
	}

	if i := cart.Find(productID); i >= 0 {
		cart.Lines[i].Quantity = quantity
		if err := s.store.Save(token, cart); err != nil {
			return nil, fmt.Errorf("save cart: %w", err)
		}
	}
	return cart, nil
}

// SetDeliveryLocation records the delivery zone choice on the cart.
func (s *CartService) SetDeliveryLocation(token, zone string) (*core.Cart, error) {
	cart, err := s.store.Load(token)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	cart.DeliveryLocation = zone
	if err := s.store.Save(token, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// SetContact snapshots the checkout contact form onto the cart so a page
// reload keeps the filled fields.
func (s *CartService) SetContact(token string, contact core.ContactInfo) (*core.Cart, error) {
	cart, err := s.store.Load(token)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	cart.Contact = contact
	if err := s.store.Save(token, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// Totals prices the cart for its chosen delivery zone. An empty cart still
// yields a zero subtotal with the zone fee applied only when lines exist.
func (s *CartService) Totals(cart *core.Cart) (*core.CartTotals, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	subtotal := cart.Subtotal()
	fee := 0
	if len(cart.Lines) > 0 {
		fee = settings.DeliveryFee(cart.DeliveryLocation)
	}
	return &core.CartTotals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		GrandTotal:  subtotal + fee,
	}, nil
}
