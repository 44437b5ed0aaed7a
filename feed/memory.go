// Package feed provides price sources for the valuation engine: an in-memory
// table for fixtures and imports, and a Yahoo Finance client for BIST quotes.
package feed

import (
	"strings"

	"bisttakip"
	"bisttakip/date"
)

// Lookback is how many calendar days a price lookup walks backwards when the
// requested day has no quote. Five days bridges weekends plus the occasional
// exchange holiday.
const Lookback = 5

// Memory is an in-memory price table. The zero value is not usable, create
// one with NewMemory. Lookups forward-fill: a day without a quote answers
// with the latest quote within Lookback days before it.
type Memory struct {
	prices map[string]map[date.Date]bisttakip.Money
}

func NewMemory() *Memory {
	return &Memory{prices: make(map[string]map[date.Date]bisttakip.Money)}
}

// Set records the price of a security on a day, replacing any earlier record.
func (m *Memory) Set(security string, on date.Date, price bisttakip.Money) {
	security = strings.ToUpper(security)
	byDay := m.prices[security]
	if byDay == nil {
		byDay = make(map[date.Date]bisttakip.Money)
		m.prices[security] = byDay
	}
	byDay[on] = price
}

// PriceOn returns the price of a security on a day, forward-filling from the
// most recent quote within Lookback days. It returns a
// *bisttakip.PriceUnavailableError when no quote is near enough.
func (m *Memory) PriceOn(security string, on date.Date) (bisttakip.Money, error) {
	byDay := m.prices[strings.ToUpper(security)]
	for i := 0; i <= Lookback; i++ {
		if price, ok := byDay[on.Add(-i)]; ok {
			return price, nil
		}
	}
	return bisttakip.Money{}, &bisttakip.PriceUnavailableError{Security: strings.ToUpper(security), On: on}
}

// PricesOn answers one day for many securities. Securities without a near
// enough quote are absent from the result.
func (m *Memory) PricesOn(on date.Date, securities []string) map[string]bisttakip.Money {
	result := make(map[string]bisttakip.Money, len(securities))
	for _, sec := range securities {
		if price, err := m.PriceOn(sec, on); err == nil {
			result[sec] = price
		}
	}
	return result
}
