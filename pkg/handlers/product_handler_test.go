package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"electroworld/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// fakeProductRepo filters in memory the way the PocketBase adapter filters
// with its name/category substring query.
type fakeProductRepo struct {
	products  []*core.Product
	lastQuery string
}

func (f *fakeProductRepo) GetByID(id string) (*core.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindActive(query string) ([]*core.Product, error) {
	f.lastQuery = query
	var out []*core.Product
	q := strings.ToLower(query)
	for _, p := range f.products {
		if !p.Active {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func listProducts(t *testing.T, repo core.ProductRepository, path string) (int, []core.Product) {
	t.Helper()
	h := &ProductHandler{Products: repo}

	rec := httptest.NewRecorder()
	e := &pbCore.RequestEvent{}
	e.Request = httptest.NewRequest(http.MethodGet, path, nil)
	e.Response = rec

	if err := h.List(e); err != nil {
		t.Fatalf("List: %v", err)
	}
	var products []core.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return rec.Code, products
}

func TestProductList_PassesSearchQuery(t *testing.T) {
	repo := &fakeProductRepo{products: []*core.Product{
		{ID: "p1", Name: "iPhone 13 Cover", Category: "Covers & Protectors", Price: 1500, Active: true},
		{ID: "p2", Name: "Samsung Galaxy A54", Category: "Phones", Price: 38000, Active: true},
		{ID: "p3", Name: "Old Cover", Category: "Covers & Protectors", Price: 500, Active: false},
	}}

	code, products := listProducts(t, repo, "/api/products?q=cover")
	if code != 200 {
		t.Fatalf("status = %d; want 200", code)
	}
	if repo.lastQuery != "cover" {
		t.Errorf("repo received query %q; want %q", repo.lastQuery, "cover")
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Errorf("products = %+v; want only the active cover", products)
	}
}

func TestProductList_NoQueryReturnsAllActive(t *testing.T) {
	repo := &fakeProductRepo{products: []*core.Product{
		{ID: "p1", Name: "iPhone 13 Cover", Category: "Covers & Protectors", Price: 1500, Active: true},
		{ID: "p2", Name: "Samsung Galaxy A54", Category: "Phones", Price: 38000, Active: true},
	}}

	code, products := listProducts(t, repo, "/api/products")
	if code != 200 {
		t.Fatalf("status = %d; want 200", code)
	}
	if repo.lastQuery != "" {
		t.Errorf("repo received query %q; want empty", repo.lastQuery)
	}
	if len(products) != 2 {
		t.Errorf("%d products; want 2", len(products))
	}
}

func TestProductList_NoMatchesIsEmptyArrayNotNull(t *testing.T) {
	repo := &fakeProductRepo{}

	h := &ProductHandler{Products: repo}
	rec := httptest.NewRecorder()
	e := &pbCore.RequestEvent{}
	e.Request = httptest.NewRequest(http.MethodGet, "/api/products?q=nomatch", nil)
	e.Response = rec

	if err := h.List(e); err != nil {
		t.Fatalf("List: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q; want empty JSON array", body)
	}
}
