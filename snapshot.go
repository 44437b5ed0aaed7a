package bisttakip

import (
	"bisttakip/date"
)

// ReplayOptions tunes the replay of a transaction history.
type ReplayOptions struct {
	// ParValue is the fixed per-share reference value that dividend
	// percentages apply to. It is the exchange's nominal value convention,
	// not the market price. Zero means the default of 1.00 TRY.
	ParValue Money

	// StrictBuyCash, when set, rejects a buy whose cost exceeds the cash
	// balance. The default is permissive: a historical record may contain
	// margin or informally financed purchases, so the shortfall is reported
	// by the resulting negative balance instead of being prevented.
	StrictBuyCash bool
}

func (o ReplayOptions) parValue() Money {
	if o.ParValue.IsZero() {
		return TRY(1)
	}
	return o.ParValue
}

// position is the per-security replay state: the open lots and the gains
// already locked in.
type position struct {
	security  string
	lots      lots
	realized  Money // gain realized by sales, FIFO cost basis
	dividends Money // cash income credited by dividend events
}

// Snapshot is the state of the account at the end of a given day, derived by
// replaying the transaction history up to that day. It holds nothing that is
// not derivable from the transaction log, so replaying the same history always
// yields the same snapshot.
type Snapshot struct {
	on        date.Date
	opts      ReplayOptions
	positions map[string]*position
	order     []string // securities in first-seen order
	cash      map[string]Money
}

func newSnapshot(opts ReplayOptions) *Snapshot {
	return &Snapshot{
		opts:      opts,
		positions: make(map[string]*position),
		cash:      make(map[string]Money),
	}
}

// SnapshotAt replays the ledger up to the end of the given day and returns
// the resulting snapshot. It is a pure function of (history, cutoff date): the
// ledger itself is never mutated, and truncating the history at any date
// reconstructs the exact state of that day.
func (l *Ledger) SnapshotAt(on date.Date, opts ReplayOptions) (*Snapshot, error) {
	r := newReplayer(l, opts)
	if err := r.advance(on); err != nil {
		return nil, err
	}
	return r.snapshot(), nil
}

// On returns the date of the snapshot.
func (s *Snapshot) On() date.Date { return s.on }

// Securities returns the tickers seen so far, in first-seen order.
func (s *Snapshot) Securities() []string { return s.order }

// Position returns the quantity held of a security.
func (s *Snapshot) Position(security string) Quantity {
	if p, ok := s.positions[security]; ok {
		return p.lots.totalQuantity()
	}
	return Quantity{}
}

// CostBasis returns the unrecovered cost of the open lots of a security.
func (s *Snapshot) CostBasis(security string) Money {
	if p, ok := s.positions[security]; ok {
		return p.lots.totalCost()
	}
	return Money{}
}

// AverageCost returns the cost basis per share of a security.
func (s *Snapshot) AverageCost(security string) Money {
	if p, ok := s.positions[security]; ok {
		return p.lots.averageCost()
	}
	return Money{}
}

// RealizedGain returns the gain locked in by sales of a security so far.
func (s *Snapshot) RealizedGain(security string) Money {
	if p, ok := s.positions[security]; ok {
		return p.realized
	}
	return Money{}
}

// DividendIncome returns the cash credited by dividend events of a security.
func (s *Snapshot) DividendIncome(security string) Money {
	if p, ok := s.positions[security]; ok {
		return p.dividends
	}
	return Money{}
}

// Cash returns the balance of a cash account in the given currency.
// An empty currency means the default one.
func (s *Snapshot) Cash(currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	if b, ok := s.cash[currency]; ok {
		return b
	}
	return M(0, currency)
}

// Lots returns a copy of the open lots of a security, oldest first, exposed
// as (acquired date, quantity, total cost) triples.
func (s *Snapshot) Lots(security string) []Lot {
	p, ok := s.positions[security]
	if !ok {
		return nil
	}
	out := make([]Lot, 0, len(p.lots))
	for _, l := range p.lots {
		out = append(out, Lot{Acquired: l.Date, Quantity: l.Quantity, Cost: l.Cost, UnitCost: l.unitCost()})
	}
	return out
}

// Lot is the read-only view of an open acquisition batch.
type Lot struct {
	Acquired date.Date
	Quantity Quantity
	Cost     Money // total remaining cost basis of the batch
	UnitCost Money
}

// replayer applies a ledger's transactions incrementally. It backs both the
// one-shot SnapshotAt and the day-by-day series where re-replaying the whole
// history for every day would be quadratic.
type replayer struct {
	ledger *Ledger
	next   int // index of the first transaction not yet applied
	state  *Snapshot
}

func newReplayer(l *Ledger, opts ReplayOptions) *replayer {
	return &replayer{ledger: l, state: newSnapshot(opts)}
}

// advance applies all transactions dated up to and including the given day.
// On error the failed transaction is left unapplied and the state reflects
// every transaction before it.
func (r *replayer) advance(on date.Date) error {
	for r.next < len(r.ledger.transactions) {
		tx := r.ledger.transactions[r.next]
		if tx.When().After(on) {
			break
		}
		if err := r.apply(tx); err != nil {
			return &ReplayError{Index: r.next, Tx: tx, Err: err}
		}
		r.next++
	}
	r.state.on = on
	return nil
}

// snapshot returns the current state. The replayer keeps ownership, callers
// asking for further days see the same snapshot advanced in place.
func (r *replayer) snapshot() *Snapshot { return r.state }

func (r *replayer) position(security string) *position {
	p, ok := r.state.positions[security]
	if !ok {
		p = &position{security: security}
		r.state.positions[security] = p
		r.state.order = append(r.state.order, security)
	}
	return p
}

func (r *replayer) credit(amount Money) {
	cur := amount.Currency()
	if cur == "" {
		cur = DefaultCurrency
	}
	r.state.cash[cur] = M(r.state.cash[cur].Amount(), cur).Add(M(amount.Amount(), cur))
}

func (r *replayer) debit(amount Money) {
	r.credit(amount.Neg())
}

func (r *replayer) apply(tx Transaction) error {
	switch v := tx.(type) {
	case Buy:
		cost := v.Cost()
		if r.state.opts.StrictBuyCash {
			balance := r.state.Cash(cost.Currency())
			if balance.LessThan(cost) {
				return &InsufficientCashError{Currency: cost.Currency(), Requested: cost, Balance: balance, On: v.When()}
			}
		}
		p := r.position(v.Security)
		p.lots = append(p.lots, lot{Date: v.When(), Quantity: v.Quantity, Cost: cost})
		r.debit(cost)

	case Sell:
		p := r.position(v.Security)
		held := p.lots.totalQuantity()
		if held.LessThan(v.Quantity) {
			return &InsufficientPositionError{Security: v.Security, Requested: v.Quantity, Held: held, On: v.When()}
		}
		proceeds := v.Proceeds()
		costBasis := p.lots.costOfSelling(v.Quantity)
		p.lots = p.lots.sell(v.Quantity)
		p.realized = p.realized.Add(proceeds.Sub(costBasis))
		r.credit(proceeds)

	case Dividend:
		// The rate applies to the par value and to the quantity held at
		// this point of the replay, so historical replay and "as of today"
		// valuation agree on the credited amount.
		p := r.position(v.Security)
		held := p.lots.totalQuantity()
		credit := r.state.opts.parValue().Percent(v.Rate).Mul(held)
		p.dividends = p.dividends.Add(credit)
		r.credit(credit)

	case CapitalIncrease:
		p := r.position(v.Security)
		if len(p.lots) == 0 {
			// Nothing to scale: the event is recorded but changes nothing.
			return nil
		}
		p.lots = p.lots.scale(v.Rate.Factor())

	case Deposit:
		r.credit(v.Amount)

	case Withdraw:
		balance := r.state.Cash(v.Amount.Currency())
		if balance.LessThan(v.Amount) {
			return &InsufficientCashError{Currency: v.Amount.Currency(), Requested: v.Amount, Balance: balance, On: v.When()}
		}
		r.debit(v.Amount)

	default:
		return validationf("unsupported transaction type %T", tx)
	}
	return nil
}
