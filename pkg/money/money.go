// Package money formats whole-shilling amounts for customer-facing text.
package money

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// KES renders an amount with the formal currency prefix: "KES 9,500".
// Used in repair quotes and booking messages.
func KES(amount int) string {
	return fmt.Sprintf("KES %s", humanize.Comma(int64(amount)))
}

// Ksh renders an amount with the colloquial prefix: "Ksh 9,500".
// Used in merchandise and trade-in messages.
func Ksh(amount int) string {
	return fmt.Sprintf("Ksh %s", humanize.Comma(int64(amount)))
}
