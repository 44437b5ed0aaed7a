// Package cmd implements the CLI application to track a BIST portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"bisttakip"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&dividendCmd{}, "transactions")
	c.Register(&bonusCmd{}, "transactions")
	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&parseCmd{}, "transactions")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "portfolio.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var parValue = flag.Float64("par-value", 1.0, "Nominal par value per share, in TRY, used to compute dividend payouts")
var strictCash = flag.Bool("strict-cash", false, "Reject buys that would overdraw the cash balance")

// DecodeLedgerFile loads the app ledger. A missing file is an empty ledger.
func DecodeLedgerFile() (*bisttakip.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", *ledgerFile).Msg("ledger file does not exist, starting empty")
		return bisttakip.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	ledger, err := bisttakip.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

func replayOptions() bisttakip.ReplayOptions {
	return bisttakip.ReplayOptions{
		ParValue:      bisttakip.TRY(*parValue),
		StrictBuyCash: *strictCash,
	}
}

// appendTransaction appends a transaction to the app ledger file.
func appendTransaction(tx bisttakip.Transaction) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := bisttakip.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be created (dumb terminals, pipes).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
