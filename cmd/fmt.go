package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bisttakip"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt [-check]

  Validates and formats the ledger file. This command reads all transactions,
  validates them, replays the full history to surface inconsistencies (like
  overselling), sorts them by date, and writes them back in a canonical
  JSONL format.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Validate and replay only, do not rewrite the file")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// a full replay surfaces semantic errors, with the offending index
	if ledger.Len() > 0 {
		if _, err := ledger.SnapshotAt(ledger.NewestDate(), replayOptions()); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	if c.check {
		fmt.Printf("%s: %d transactions, all valid\n", *ledgerFile, ledger.Len())
		return subcommands.ExitSuccess
	}

	var buf bytes.Buffer
	if err := bisttakip.EncodeLedger(&buf, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(*ledgerFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s (%d transactions)\n", *ledgerFile, ledger.Len())
	return subcommands.ExitSuccess
}
