// Package whatsapp builds wa.me deep links and the pre-filled messages the
// shop hands off to customers. The handoff is fire-and-forget: there is no
// acknowledgement channel, so callers only surface the link.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Link builds a https://wa.me deep link for a phone number and message.
// The number is reduced to digits only (leading "+", spaces and dashes
// stripped) and the message is URL-encoded.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(phone), url.QueryEscape(message))
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
