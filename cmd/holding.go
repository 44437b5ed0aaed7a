package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bisttakip"
	"bisttakip/date"
	"bisttakip/feed"
	"bisttakip/renderer"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date    string
	offline bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display detailed holdings for a specific date" }
func (*holdingCmd) Usage() string {
	return `holding [-d <date>] [-offline]

  Displays the portfolio holdings (securities and cash) on a given date,
  valued with Yahoo Finance closing prices. Holdings without a usable price
  are listed unvalued and excluded from the total.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the holdings report (YYYY-MM-DD)")
	f.BoolVar(&c.offline, "offline", false, "Skip price fetching, report cost basis only")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var source bisttakip.PriceSource = feed.NewYahoo()
	if c.offline {
		source = feed.NewMemory()
	}

	value, err := ledger.ValueAsOf(on, source, replayOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingMarkdown(value))
	return subcommands.ExitSuccess
}
