package service

import (
	"fmt"

	"electroworld/internal/core"
)

// In-memory test doubles for the core ports.

type memCartStore struct {
	carts map[string]*core.Cart
	saves int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]*core.Cart{}}
}

func (m *memCartStore) Load(token string) (*core.Cart, error) {
	if cart, ok := m.carts[token]; ok {
		cp := *cart
		cp.Lines = append([]core.CartLine(nil), cart.Lines...)
		return &cp, nil
	}
	return &core.Cart{}, nil
}

func (m *memCartStore) Save(token string, cart *core.Cart) error {
	cp := *cart
	cp.Lines = append([]core.CartLine(nil), cart.Lines...)
	m.carts[token] = &cp
	m.saves++
	return nil
}

func (m *memCartStore) Clear(token string) error {
	delete(m.carts, token)
	return nil
}

type memProductRepo struct {
	products map[string]*core.Product
}

func newMemProductRepo(products ...*core.Product) *memProductRepo {
	m := &memProductRepo{products: map[string]*core.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memProductRepo) GetByID(id string) (*core.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (m *memProductRepo) FindActive(query string) ([]*core.Product, error) {
	var out []*core.Product
	for _, p := range m.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

type memOrderRepo struct {
	orders []*core.Order
}

func (m *memOrderRepo) Create(order *core.Order) error {
	order.ID = fmt.Sprintf("order%d", len(m.orders)+1)
	m.orders = append(m.orders, order)
	return nil
}

func (m *memOrderRepo) GetByID(id string) (*core.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("order %s not found", id)
}

func (m *memOrderRepo) FindRecent(limit int) ([]*core.Order, error) {
	if limit > len(m.orders) {
		limit = len(m.orders)
	}
	out := make([]*core.Order, 0, limit)
	for i := len(m.orders) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.orders[i])
	}
	return out, nil
}

type memSettingsRepo struct {
	settings *core.Settings
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{settings: &core.Settings{
		ShopName:        "ElectroWorld",
		ContactEmail:    "electroworldke@gmail.com",
		BookingWhatsApp: "+254706234072",
		TradeInWhatsApp: "+254799654737",
		OrdersWhatsApp:  "+254706234072",
		NairobiFee:      200,
		UpcountryFee:    400,
		PublicBaseURL:   "https://shop.example.com",
		InvoiceSecret:   "test-secret",
	}}
}

func (m *memSettingsRepo) GetSettings() (*core.Settings, error) {
	return m.settings, nil
}
