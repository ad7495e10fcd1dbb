package service

import (
	"fmt"
	"time"

	"electroworld/internal/core"

	"github.com/golang-jwt/jwt/v5"
)

// InvoiceService signs and verifies the shareable invoice links sent to
// customers after checkout. Tokens are bound to a single order and expire
// after 30 days. The signing secret comes from the settings record and is
// resolved per call so rotating it takes effect immediately.
type InvoiceService struct {
	settings core.SettingsRepository
}

func NewInvoiceService(settings core.SettingsRepository) *InvoiceService {
	return &InvoiceService{settings: settings}
}

const invoiceTokenTTL = 30 * 24 * time.Hour

func (s *InvoiceService) secret() ([]byte, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return []byte(settings.InvoiceSecret), nil
}

// SignToken issues a token granting view access to one order.
func (s *InvoiceService) SignToken(orderID string) (string, error) {
	secret, err := s.secret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub": orderID,
		"exp": time.Now().Add(invoiceTokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign invoice token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the order ID the
// token was issued for.
func (s *InvoiceService) VerifyToken(tokenStr string) (string, error) {
	secret, err := s.secret()
	if err != nil {
		return "", err
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse invoice token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid invoice token")
	}
	orderID, _ := claims["sub"].(string)
	if orderID == "" {
		return "", fmt.Errorf("invoice token missing order id")
	}
	return orderID, nil
}

// InvoiceURL builds the customer-facing invoice link for an order.
func (s *InvoiceService) InvoiceURL(baseURL, orderID string) (string, error) {
	token, err := s.SignToken(orderID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/invoice/%s?token=%s", baseURL, orderID, token), nil
}
