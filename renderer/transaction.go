package renderer

import (
	"fmt"
	"strings"

	"bisttakip"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx bisttakip.Transaction) string {
	switch v := tx.(type) {
	case bisttakip.Buy:
		return fmt.Sprintf("Bought %s %s at %s", v.Quantity, v.Security, v.Price)
	case bisttakip.Sell:
		return fmt.Sprintf("Sold %s %s at %s", v.Quantity, v.Security, v.Price)
	case bisttakip.Dividend:
		return fmt.Sprintf("Dividend of %s on %s", v.Rate, v.Security)
	case bisttakip.CapitalIncrease:
		return fmt.Sprintf("Bonus issue of %s on %s", v.Rate, v.Security)
	case bisttakip.Deposit:
		return fmt.Sprintf("Deposited %s", v.Amount)
	case bisttakip.Withdraw:
		return fmt.Sprintf("Withdrew %s", v.Amount)
	default:
		return string(tx.What())
	}
}

// LedgerMarkdown renders the full transaction history, oldest first.
func LedgerMarkdown(ledger *bisttakip.Ledger) string {
	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	for _, tx := range ledger.Transactions() {
		fmt.Fprintf(&b, "- %s %s\n", tx.When(), Transaction(tx))
	}
	return b.String()
}
