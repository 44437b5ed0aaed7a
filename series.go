package bisttakip

import (
	"bisttakip/date"
)

// DailyValue is one point of the daily value time series.
type DailyValue struct {
	On         date.Date
	TotalValue Money
	Incomplete bool // at least one holding could not be priced that day
}

// DailySeries computes the total account value for every day of the range,
// replaying the ledger incrementally: each day applies only that day's
// transactions on top of the previous day's state, and prices for a day are
// looked up once across all open symbols. The result is identical to a full
// replay per day.
func (l *Ledger) DailySeries(rng date.Range, source PriceSource, opts ReplayOptions) ([]DailyValue, error) {
	r := newReplayer(l, opts)
	series := make([]DailyValue, 0, rng.Days())

	for day := range rng.All() {
		if err := r.advance(day); err != nil {
			return nil, err
		}
		snap := r.snapshot()

		var open []string
		for _, sec := range snap.Securities() {
			if snap.Position(sec).IsPositive() {
				open = append(open, sec)
			}
		}
		prices := lookupPrices(source, day, open)

		point := DailyValue{On: day, TotalValue: snap.Cash(DefaultCurrency)}
		for _, sec := range open {
			price, ok := prices[sec]
			if !ok {
				point.Incomplete = true
				continue
			}
			point.TotalValue = point.TotalValue.Add(price.Mul(snap.Position(sec)))
		}
		series = append(series, point)
	}
	return series, nil
}
