package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"electroworld/internal/core"
	"electroworld/pkg/whatsapp"
)

// BookingService validates repair appointment requests and hands them off
// as WhatsApp deep links. Bookings are not persisted; the chat thread is
// the system of record.
type BookingService struct {
	settings core.SettingsRepository
	now      func() time.Time
}

func NewBookingService(settings core.SettingsRepository) *BookingService {
	return &BookingService{settings: settings, now: time.Now}
}

// Validate checks the appointment form. The date must parse as YYYY-MM-DD
// and not lie in the past; today is allowed.
func (s *BookingService) Validate(req core.BookingRequest) core.FieldErrors {
	errs := core.FieldErrors{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Time) == "" {
		errs["time"] = "Pick an appointment time"
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		errs["date"] = "Pick an appointment date"
	} else if parsed, err := time.Parse("2006-01-02", date); err != nil {
		errs["date"] = "Invalid date"
	} else {
		// Compare calendar days in the clock's own zone; truncating the
		// absolute time would shift the boundary to the UTC midnight.
		now := s.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if parsed.Before(today) {
			errs["date"] = "Date cannot be in the past"
		}
	}
	return errs
}

// Book validates the request and builds the WhatsApp link carrying the
// appointment details and the quoted repairs.
func (s *BookingService) Book(req core.BookingRequest, quote *core.Quote) (string, core.FieldErrors, error) {
	if errs := s.Validate(req); errs.Has() {
		return "", errs, nil
	}

	settings, err := s.settings.GetSettings()
	if err != nil {
		return "", nil, fmt.Errorf("load settings: %w", err)
	}

	log.Printf("📅 [BOOKING] %s booked %s %s for %s", req.Name, req.Date, req.Time, quote.Model)
	return whatsapp.Link(settings.BookingWhatsApp, whatsapp.BookingMessage(req, quote)), nil, nil
}
