package catalog

import "testing"

func TestFindModel(t *testing.T) {
	prices, ok := FindModel("phone", "Apple", "iPhone 11")
	if !ok {
		t.Fatal("expected iPhone 11 to be present in the catalog")
	}
	if prices[ScreenRepair] != 5500 {
		t.Errorf("iPhone 11 screen repair = %d; want 5500", prices[ScreenRepair])
	}
	if prices[BatteryReplacement] != 4000 {
		t.Errorf("iPhone 11 battery replacement = %d; want 4000", prices[BatteryReplacement])
	}
	if _, offered := prices[KeyboardRepair]; offered {
		t.Error("iPhone 11 should not offer keyboard repair")
	}
}

func TestFindModel_Unknown(t *testing.T) {
	tests := []struct {
		category, brand, model string
	}{
		{"phone", "Apple", "iPhone 99"},
		{"phone", "Nokia", "3310"},
		{"fridge", "Apple", "iPhone 11"},
		{"", "", ""},
	}

	for _, tt := range tests {
		if _, ok := FindModel(tt.category, tt.brand, tt.model); ok {
			t.Errorf("FindModel(%q, %q, %q) unexpectedly found a model", tt.category, tt.brand, tt.model)
		}
	}
}

func TestFindModel_AbsentKindMeansNotOffered(t *testing.T) {
	// iMac 21.5" has no battery to replace; the catalog simply omits the kind.
	prices, ok := FindModel("laptop", "Apple", "iMac 21.5\"")
	if !ok {
		t.Fatal("expected iMac 21.5\" to be present in the catalog")
	}
	if _, offered := prices[BatteryReplacement]; offered {
		t.Error("iMac 21.5\" should not offer battery replacement")
	}
	if prices[SpeakerRepair] != 8000 {
		t.Errorf("iMac 21.5\" speaker repair = %d; want 8000", prices[SpeakerRepair])
	}
}

func TestCatalogPricesNonNegative(t *testing.T) {
	for _, category := range Categories() {
		for _, brand := range Brands(category) {
			for _, model := range Models(category, brand) {
				prices, ok := FindModel(category, brand, model)
				if !ok {
					t.Fatalf("model %s/%s/%s listed but not found", category, brand, model)
				}
				for kind, price := range prices {
					if !kind.IsValid() {
						t.Errorf("%s/%s/%s has unknown repair kind %q", category, brand, model, kind)
					}
					if price < 0 {
						t.Errorf("%s/%s/%s %s price is negative: %d", category, brand, model, kind, price)
					}
				}
			}
		}
	}
}

func TestBrandsAndModels(t *testing.T) {
	brands := Brands("laptop")
	expected := []string{"Apple", "Dell", "HP", "Lenovo"}
	if len(brands) != len(expected) {
		t.Fatalf("Brands(laptop) = %v; want %v", brands, expected)
	}
	for i := range brands {
		if brands[i] != expected[i] {
			t.Errorf("Brands(laptop)[%d] = %s; want %s", i, brands[i], expected[i])
		}
	}

	if models := Models("tablet", "Microsoft"); len(models) != 5 {
		t.Errorf("Models(tablet, Microsoft) has %d entries; want 5", len(models))
	}
	if models := Models("tablet", "Nokia"); models != nil {
		t.Errorf("Models(tablet, Nokia) = %v; want nil", models)
	}
}
