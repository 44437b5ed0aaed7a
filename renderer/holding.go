// Package renderer formats reports as markdown strings.
package renderer

import (
	"fmt"
	"strings"

	"bisttakip"
)

// HoldingMarkdown renders a point-in-time portfolio valuation.
func HoldingMarkdown(v *bisttakip.PortfolioValue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio on %s\n\n", v.On)

	if len(v.Holdings) > 0 {
		fmt.Fprintln(&b, "| Security | Quantity | Avg Cost | Cost Basis | Market Value | Unrealized | Realized | Dividends |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
		for _, h := range v.Holdings {
			market := h.MarketValue.String()
			unrealized := h.UnrealizedGain.SignedString()
			if h.PriceMissing {
				market, unrealized = "n/a", "n/a"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
				h.Security,
				h.Quantity,
				h.AverageCost,
				h.CostBasis,
				market,
				unrealized,
				h.RealizedGain.SignedString(),
				h.Dividends.String(),
			)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "| **Total Value** | **%s** |\n", v.TotalValue)
	fmt.Fprintf(&b, "|:---|---:|\n")
	fmt.Fprintf(&b, "| Cash | %s |\n", v.Cash)

	if v.Incomplete {
		fmt.Fprintf(&b, "\nSome holdings could not be priced, the total excludes them.\n")
	}
	return b.String()
}
