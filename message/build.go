package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bisttakip"
	"bisttakip/date"
)

// Build converts a capture into a ledger transaction. Announcements that
// carry their own date use it, otherwise the message falls back to the given
// date (the day the message was received). A zero fallback means today.
func Build(c Capture, fallback date.Date) (bisttakip.Transaction, error) {
	on, err := captureDate(c, fallback)
	if err != nil {
		return nil, err
	}

	var tx bisttakip.Transaction
	switch c.Kind {
	case KindBuy:
		qty, price, err := tradeFields(c)
		if err != nil {
			return nil, err
		}
		tx = bisttakip.NewBuy(on, "", c.Symbol, qty, price)
	case KindSell:
		qty, price, err := tradeFields(c)
		if err != nil {
			return nil, err
		}
		tx = bisttakip.NewSell(on, "", c.Symbol, qty, price)
	case KindDividend:
		rate, err := ratio(c.Rate, "dividend rate")
		if err != nil {
			return nil, err
		}
		tx = bisttakip.NewDividend(on, "", c.Symbol, rate)
	case KindCapitalIncrease:
		rate, err := ratio(c.Rate, "capital increase rate")
		if err != nil {
			return nil, err
		}
		tx = bisttakip.NewCapitalIncrease(on, "", c.Symbol, rate)
	case KindDeposit:
		amount, err := cashField(c.Amount, "deposit amount")
		if err != nil {
			return nil, err
		}
		tx = bisttakip.NewDeposit(on, "", amount)
	case KindWithdraw:
		amount, err := cashField(c.Amount, "withdrawal amount")
		if err != nil {
			return nil, err
		}
		tx = bisttakip.NewWithdraw(on, "", amount)
	default:
		return nil, &bisttakip.ValidationError{Msg: fmt.Sprintf("unknown message kind %q", c.Kind)}
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Parse is the one-stop entry: normalize raw text, recognize it, build the
// transaction. A NoMatchError reports the original raw text, not the
// normalized form, so it can be shown back to the user as received.
func Parse(raw string, fallback date.Date) (bisttakip.Transaction, error) {
	c, err := Match(Normalize(raw))
	if err != nil {
		return nil, &NoMatchError{Text: raw}
	}
	return Build(c, fallback)
}

func tradeFields(c Capture) (bisttakip.Quantity, bisttakip.Money, error) {
	q, err := parseDecimal(c.Quantity)
	if err != nil || !q.IsPositive() {
		return bisttakip.Quantity{}, bisttakip.Money{}, &bisttakip.ValidationError{Msg: fmt.Sprintf("invalid quantity %q", c.Quantity)}
	}
	p, err := parseDecimal(c.Price)
	if err != nil || !p.IsPositive() {
		return bisttakip.Quantity{}, bisttakip.Money{}, &bisttakip.ValidationError{Msg: fmt.Sprintf("invalid price %q", c.Price)}
	}
	return bisttakip.Q(q), bisttakip.M(p, ""), nil
}

func cashField(s, what string) (bisttakip.Money, error) {
	d, err := parseDecimal(s)
	if err != nil || !d.IsPositive() {
		return bisttakip.Money{}, &bisttakip.ValidationError{Msg: fmt.Sprintf("invalid %s %q", what, s)}
	}
	return bisttakip.M(d, ""), nil
}

func ratio(s, what string) (bisttakip.Percent, error) {
	d, err := parseDecimal(s)
	if err != nil || !d.IsPositive() {
		return 0, &bisttakip.ValidationError{Msg: fmt.Sprintf("invalid %s %q", what, s)}
	}
	f, _ := d.Float64()
	return bisttakip.Percent(f), nil
}

// parseDecimal accepts both Turkish comma and dot decimal separators.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

func captureDate(c Capture, fallback date.Date) (date.Date, error) {
	if c.Date != "" {
		on, err := time.Parse("02.01.2006", c.Date)
		if err != nil {
			return date.Date{}, &bisttakip.ValidationError{Msg: fmt.Sprintf("invalid date %q in message", c.Date)}
		}
		return date.New(on.Date()), nil
	}
	if fallback.IsZero() {
		return date.Today(), nil
	}
	return fallback, nil
}
