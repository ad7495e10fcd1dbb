package service

import (
	"fmt"
	"log"
	"strings"

	"electroworld/internal/core"
	"electroworld/pkg/whatsapp"
)

// Minimum device photos for a trade-in: front, back and both sides.
const minTradeInImages = 4

// TradeInService validates the multi-step sell/trade-in form and produces
// the WhatsApp hand-off link. Like bookings, trade-ins are not persisted.
type TradeInService struct {
	settings core.SettingsRepository
}

func NewTradeInService(settings core.SettingsRepository) *TradeInService {
	return &TradeInService{settings: settings}
}

// ValidateStep checks one wizard step so the client can gate navigation.
// Steps: 1 device identity, 2 condition report, 3 deal terms, 4 photos.
func (s *TradeInService) ValidateStep(step int, req core.TradeInRequest) core.FieldErrors {
	errs := core.FieldErrors{}
	switch step {
	case 1:
		if strings.TrimSpace(req.FullName) == "" {
			errs["fullName"] = "Full name is required"
		}
		if strings.TrimSpace(req.PhoneModel) == "" {
			errs["phoneModel"] = "Phone model is required"
		}
		if strings.TrimSpace(req.Storage) == "" {
			errs["storage"] = "Storage size is required"
		}
	case 2:
		if strings.TrimSpace(req.Condition) == "" {
			errs["condition"] = "Overall condition is required"
		}
		if strings.TrimSpace(req.ScreenIssues) == "" {
			errs["screenIssues"] = "Describe the screen condition"
		}
		if strings.TrimSpace(req.BodyIssues) == "" {
			errs["bodyIssues"] = "Describe the body condition"
		}
		if strings.TrimSpace(req.BatteryHealth) == "" {
			errs["batteryHealth"] = "Battery health is required"
		}
	case 3:
		switch req.SellingOption {
		case "sell":
			if strings.TrimSpace(req.DesiredCashAmount) == "" {
				errs["desiredCashAmount"] = "Enter your asking price"
			}
		case "trade":
			if strings.TrimSpace(req.DesiredPhone) == "" {
				errs["desiredPhone"] = "Pick the phone you want"
			}
		default:
			errs["sellingOption"] = "Choose sell or trade"
		}
	case 4:
		if req.ImageCount < minTradeInImages {
			errs["images"] = fmt.Sprintf("At least %d photos of the device are required", minTradeInImages)
		}
	default:
		errs["step"] = "Unknown step"
	}
	return errs
}

// Validate runs all wizard steps against the full request.
func (s *TradeInService) Validate(req core.TradeInRequest) core.FieldErrors {
	errs := core.FieldErrors{}
	for step := 1; step <= 4; step++ {
		for field, msg := range s.ValidateStep(step, req) {
			errs[field] = msg
		}
	}
	return errs
}

// Submit validates the complete request and builds the WhatsApp link.
func (s *TradeInService) Submit(req core.TradeInRequest) (string, core.FieldErrors, error) {
	if errs := s.Validate(req); errs.Has() {
		return "", errs, nil
	}

	settings, err := s.settings.GetSettings()
	if err != nil {
		return "", nil, fmt.Errorf("load settings: %w", err)
	}

	log.Printf("🔄 [TRADEIN] %s wants to %s a %s", req.FullName, req.SellingOption, req.PhoneModel)
	return whatsapp.Link(settings.TradeInWhatsApp, whatsapp.TradeInMessage(req)), nil, nil
}
