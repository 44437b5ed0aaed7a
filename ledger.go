package bisttakip

import (
	"iter"
	"sort"

	"bisttakip/date"
)

// Ledger holds the ordered transaction history of a single account.
//
// Transactions are kept in non-decreasing date order; transactions sharing a
// date stay in input order. That invariant matters: a capital increase scales
// the lots that exist when it is applied, so same-day trades recorded before
// it must be replayed before it.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append validates the given transactions and adds them to the ledger,
// restoring chronological order. The sort is stable so same-day records keep
// their insertion order.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
	}
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
	return nil
}

func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// Transactions iterates over all transactions in chronological order,
// yielding each transaction with its position in the sequence.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Securities returns the tickers that appear in the ledger, in first-seen order.
func (l *Ledger) Securities() []string {
	seen := make(map[string]bool)
	var out []string
	for _, tx := range l.transactions {
		sec := Security(tx)
		if sec == "" || seen[sec] {
			continue
		}
		seen[sec] = true
		out = append(out, sec)
	}
	return out
}

// OldestDate returns the date of the first transaction, or the zero date for
// an empty ledger.
func (l *Ledger) OldestDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[0].When()
}

// NewestDate returns the date of the last transaction, or the zero date for
// an empty ledger.
func (l *Ledger) NewestDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}

// Position returns the quantity of a security held at the end of a given day,
// derived by replaying the history up to that day.
func (l *Ledger) Position(security string, on date.Date) (Quantity, error) {
	snap, err := l.SnapshotAt(on, ReplayOptions{})
	if err != nil {
		return Quantity{}, err
	}
	return snap.Position(security), nil
}

// CashBalance returns the running cash balance in a currency at the end of a
// given day.
func (l *Ledger) CashBalance(currency string, on date.Date) (Money, error) {
	snap, err := l.SnapshotAt(on, ReplayOptions{})
	if err != nil {
		return Money{}, err
	}
	return snap.Cash(currency), nil
}
