package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bisttakip"
	"bisttakip/date"
)

// --- Buy Command ---

type buyCmd struct {
	date     string
	security string
	quantity float64
	price    float64
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -s <security> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  Purchases shares of a security. The total cost is debited from the cash account.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := bisttakip.NewBuy(day, c.memo, c.security, bisttakip.Q(c.quantity), bisttakip.TRY(c.price))
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	security string
	quantity float64
	price    float64
	memo     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -s <security> -q <quantity> -p <price> [-d <date>] [-m <memo>]

  Sells shares of a security. The proceeds are credited to the cash account.
  If -q is missing, the whole position on that date is sold.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares, if missing all shares are sold")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity < 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	quantity := bisttakip.Q(c.quantity)
	if quantity.IsZero() {
		// sell all: resolve the position held on that date
		ledger, err := DecodeLedgerFile()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		quantity, err = ledger.Position(c.security, day)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if !quantity.IsPositive() {
			fmt.Fprintf(os.Stderr, "Error: no %s position to sell on %s\n", c.security, day)
			return subcommands.ExitFailure
		}
	}

	tx := bisttakip.NewSell(day, c.memo, c.security, quantity, bisttakip.TRY(c.price))
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}

// --- Dividend Command ---

type dividendCmd struct {
	date     string
	security string
	rate     float64
	memo     string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend announcement" }
func (*dividendCmd) Usage() string {
	return `dividend -s <security> -r <rate> [-d <date>] [-m <memo>]

  Records a dividend of <rate> percent of the par value per held share.
  The payout is credited to the cash account on replay.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Payment date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.rate, "r", 0, "Dividend rate in percent of par value, e.g. 45.2")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.rate <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := bisttakip.NewDividend(day, c.memo, c.security, bisttakip.Percent(c.rate))
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}

// --- Bonus (capital increase) Command ---

type bonusCmd struct {
	date     string
	security string
	rate     float64
	memo     string
}

func (*bonusCmd) Name() string     { return "bonus" }
func (*bonusCmd) Synopsis() string { return "record a bonus share capital increase" }
func (*bonusCmd) Usage() string {
	return `bonus -s <security> -r <rate> [-d <date>] [-m <memo>]

  Records a bonus issue of <rate> percent: a 900 rate multiplies the held
  quantity by 10 while the cost basis stays unchanged.
`
}

func (c *bonusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Effective date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.rate, "r", 0, "Capital increase rate in percent, e.g. 900")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *bonusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.rate <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := bisttakip.NewCapitalIncrease(day, c.memo, c.security, bisttakip.Percent(c.rate))
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}

// --- Deposit / Withdraw Commands ---

type depositCmd struct {
	date   string
	amount float64
	memo   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit cash into the account" }
func (*depositCmd) Usage() string {
	return `deposit -a <amount> [-d <date>] [-m <memo>]

  Credits the cash account.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount in TRY")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := bisttakip.NewDeposit(day, c.memo, bisttakip.TRY(c.amount))
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}

type withdrawCmd struct {
	date   string
	amount float64
	memo   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw cash from the account" }
func (*withdrawCmd) Usage() string {
	return `withdraw -a <amount> [-d <date>] [-m <memo>]

  Debits the cash account. The replay fails if the balance would go negative.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Float64Var(&c.amount, "a", 0, "Amount in TRY")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := bisttakip.NewWithdraw(day, c.memo, bisttakip.TRY(c.amount))
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}
