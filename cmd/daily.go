package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bisttakip/date"
	"bisttakip/feed"
	"bisttakip/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	start string
	end   string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the day-by-day portfolio value series" }
func (*dailyCmd) Usage() string {
	return `daily [-s <start_date>] [-d <end_date>]

  Displays the total portfolio value for every day in the range. The start
  defaults to the oldest transaction, the end to today. Days without a quote
  for some holding are marked and their total excludes those holdings.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date (defaults to the first transaction)")
	f.StringVar(&c.end, "d", date.Today().String(), "End date (YYYY-MM-DD)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Fprintln(os.Stderr, "The ledger is empty, nothing to report.")
		return subcommands.ExitSuccess
	}

	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	start := ledger.OldestDate()
	if c.start != "" {
		start, err = date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if end.Before(start) {
		fmt.Fprintf(os.Stderr, "Error: end date %s is before start date %s\n", end, start)
		return subcommands.ExitUsageError
	}

	series, err := ledger.DailySeries(date.NewRange(start, end), feed.NewYahoo(), replayOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DailyMarkdown(series))
	return subcommands.ExitSuccess
}
