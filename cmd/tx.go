package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bisttakip"
	"bisttakip/renderer"
)

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `tx [-head <n>] [-tail <n>]

  Lists the transactions of the ledger in chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.head > 0 || c.tail > 0 {
		trimmed, err := trim(ledger, c.head, c.tail)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		ledger = trimmed
	}

	printMarkdown(renderer.LedgerMarkdown(ledger))
	return subcommands.ExitSuccess
}

// trim keeps the first `head` or last `tail` transactions of the ledger.
func trim(l *bisttakip.Ledger, head, tail int) (*bisttakip.Ledger, error) {
	var txs []bisttakip.Transaction
	for _, tx := range l.Transactions() {
		txs = append(txs, tx)
	}
	if head > 0 && len(txs) > head {
		txs = txs[:head]
	}
	if tail > 0 && len(txs) > tail {
		txs = txs[len(txs)-tail:]
	}
	out := bisttakip.NewLedger()
	if err := out.Append(txs...); err != nil {
		return nil, err
	}
	return out, nil
}
