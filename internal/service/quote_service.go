package service

import (
	"electroworld/internal/catalog"
	"electroworld/internal/core"
)

// Repair intents a customer can walk in with. Hardware pre-selects the two
// most common physical repairs; software pre-selects the software option.
const (
	IntentHardware = "hardware"
	IntentSoftware = "software"
)

// QuoteService builds and mutates repair cost estimates from the static
// pricing catalog. It holds no state; quotes are plain values.
type QuoteService struct{}

func NewQuoteService() *QuoteService {
	return &QuoteService{}
}

// BuildQuote assembles the repair options for a device. The options are the
// intersection of the category's applicable repair kinds and the kinds the
// model actually has a price for, in resolver order. An unknown model yields
// an empty quote, not an error.
func (s *QuoteService) BuildQuote(category, brand, model, intent string) *core.Quote {
	quote := &core.Quote{
		Category: category,
		Brand:    brand,
		Model:    model,
		Intent:   intent,
	}

	prices, ok := catalog.FindModel(category, brand, model)
	if !ok {
		return quote
	}

	for _, kind := range catalog.ResolveRepairTypes(category) {
		price, offered := prices[kind]
		if !offered {
			continue
		}
		quote.Selections = append(quote.Selections, core.RepairSelection{
			Kind:     kind,
			Label:    kind.Label(),
			Price:    price,
			Selected: preselect(intent, kind),
		})
	}

	return quote
}

// Toggle flips one selection's flag in place. Unknown kinds are ignored;
// totals are derived from the selection set so nothing else needs updating.
func (s *QuoteService) Toggle(quote *core.Quote, kind catalog.RepairKind) {
	for i := range quote.Selections {
		if quote.Selections[i].Kind == kind {
			quote.Selections[i].Selected = !quote.Selections[i].Selected
			return
		}
	}
}

// ApplySelections overwrites the selection flags from an explicit kind set,
// used when a client round-trips its own toggled state.
func (s *QuoteService) ApplySelections(quote *core.Quote, selected []catalog.RepairKind) {
	on := make(map[catalog.RepairKind]bool, len(selected))
	for _, k := range selected {
		on[k] = true
	}
	for i := range quote.Selections {
		quote.Selections[i].Selected = on[quote.Selections[i].Kind]
	}
}

func preselect(intent string, kind catalog.RepairKind) bool {
	switch intent {
	case IntentHardware:
		return kind == catalog.ScreenRepair || kind == catalog.BatteryReplacement
	case IntentSoftware:
		return kind == catalog.SoftwareRepair
	default:
		return false
	}
}
