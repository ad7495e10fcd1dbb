// Package catalog holds the static repair pricing data and the lookup rules
// built on top of it. The data is immutable after process start.
package catalog

// Categories returns the device categories present in the pricing catalog.
func Categories() []string {
	return []string{"phone", "laptop", "tablet"}
}

// Brands returns the brands serviced for a device category, in catalog order.
// Unknown categories yield an empty slice.
func Brands(category string) []string {
	brands := repairPrices[category]
	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.Brand)
	}
	return names
}

// Models returns the model names serviced for a category/brand pair.
func Models(category, brand string) []string {
	for _, b := range repairPrices[category] {
		if b.Brand == brand {
			names := make([]string, 0, len(b.Models))
			for _, m := range b.Models {
				names = append(names, m.Model)
			}
			return names
		}
	}
	return nil
}

// FindModel looks up a model's price table. The second return value is false
// when the category, brand or model is not in the catalog; callers treat that
// as "no estimate available", not an error.
func FindModel(category, brand, model string) (PriceTable, bool) {
	for _, b := range repairPrices[category] {
		if b.Brand != brand {
			continue
		}
		for _, m := range b.Models {
			if m.Model == model {
				return m.Prices, true
			}
		}
	}
	return nil, false
}
