package renderer

import (
	"fmt"
	"strings"

	"bisttakip"
)

// DailyMarkdown renders a day-by-day portfolio value series. Days with an
// unpriceable holding are marked with an asterisk.
func DailyMarkdown(series []bisttakip.DailyValue) string {
	var b strings.Builder

	b.WriteString("# Daily Portfolio Value\n\n")
	if len(series) == 0 {
		b.WriteString("No days in range.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Total Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	incomplete := false
	for _, day := range series {
		mark := ""
		if day.Incomplete {
			mark = " \\*"
			incomplete = true
		}
		fmt.Fprintf(&b, "| %s | %s%s |\n", day.On, day.TotalValue, mark)
	}
	if incomplete {
		b.WriteString("\n\\* some holdings had no usable price and are excluded from that day's total.\n")
	}
	return b.String()
}
