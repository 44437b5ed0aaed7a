package bisttakip

import (
	"bisttakip/date"
)

// PriceSource is the capability to price a security on a given day. It is an
// external collaborator (network, cache, fixture); the expected failure mode
// is a *PriceUnavailableError when no traded price exists at or near the date.
type PriceSource interface {
	PriceOn(security string, on date.Date) (Money, error)
}

// BatchPriceSource is an optional refinement of PriceSource for sources that
// can answer one date for many securities in a single call. The daily series
// is the call-heavy path and prefers it when available.
type BatchPriceSource interface {
	PriceSource
	PricesOn(on date.Date, securities []string) map[string]Money
}

// HoldingValue is the valuation of a single security position.
type HoldingValue struct {
	Security       string
	Quantity       Quantity
	AverageCost    Money
	CostBasis      Money
	MarketValue    Money
	UnrealizedGain Money
	RealizedGain   Money
	Dividends      Money
	// PriceMissing marks a holding the source could not price: its market
	// value and unrealized gain are zero and excluded from the totals.
	PriceMissing bool
}

// PortfolioValue is the point-in-time valuation of the whole account, the
// shape the presentation layer renders.
type PortfolioValue struct {
	On         date.Date
	Holdings   []HoldingValue // open positions in first-seen order
	Cash       Money
	TotalValue Money
	// Incomplete is set when at least one holding could not be priced.
	Incomplete bool
}

// ValueAsOf replays the ledger up to the given day and values the open
// positions with the price source. A missing price never fails the valuation:
// the holding is flagged and its contribution excluded.
func (l *Ledger) ValueAsOf(on date.Date, source PriceSource, opts ReplayOptions) (*PortfolioValue, error) {
	snap, err := l.SnapshotAt(on, opts)
	if err != nil {
		return nil, err
	}
	return snap.Value(source)
}

// Value prices the snapshot's open positions and assembles the portfolio value.
func (s *Snapshot) Value(source PriceSource) (*PortfolioValue, error) {
	pv := &PortfolioValue{On: s.on, Cash: s.Cash(DefaultCurrency)}

	var open []string
	for _, sec := range s.order {
		if s.Position(sec).IsPositive() {
			open = append(open, sec)
		}
	}
	prices := lookupPrices(source, s.on, open)

	total := pv.Cash
	for _, sec := range s.order {
		qty := s.Position(sec)
		if !qty.IsPositive() {
			continue
		}
		h := HoldingValue{
			Security:     sec,
			Quantity:     qty,
			AverageCost:  s.AverageCost(sec),
			CostBasis:    s.CostBasis(sec),
			RealizedGain: s.RealizedGain(sec),
			Dividends:    s.DividendIncome(sec),
		}
		price, ok := prices[sec]
		if !ok {
			h.PriceMissing = true
			pv.Incomplete = true
		} else {
			h.MarketValue = price.Mul(qty)
			h.UnrealizedGain = h.MarketValue.Sub(h.CostBasis)
			total = total.Add(h.MarketValue)
		}
		pv.Holdings = append(pv.Holdings, h)
	}
	pv.TotalValue = total
	return pv, nil
}

// lookupPrices resolves prices for a set of securities on one day, using the
// batch capability when the source offers it. Unpriceable securities are
// simply absent from the result.
func lookupPrices(source PriceSource, on date.Date, securities []string) map[string]Money {
	if len(securities) == 0 {
		return nil
	}
	if batch, ok := source.(BatchPriceSource); ok {
		return batch.PricesOn(on, securities)
	}
	prices := make(map[string]Money, len(securities))
	for _, sec := range securities {
		price, err := source.PriceOn(sec, on)
		if err != nil {
			continue
		}
		prices[sec] = price
	}
	return prices
}
