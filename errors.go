package bisttakip

import (
	"fmt"

	"bisttakip/date"
)

// ValidationError reports a transaction whose fields violate an invariant.
// Out-of-range values are never silently coerced.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientPositionError reports a sell that exceeds the held quantity.
// The sale is rejected as a whole, nothing is clamped.
type InsufficientPositionError struct {
	Security  string
	Requested Quantity
	Held      Quantity
	On        date.Date
}

func (e *InsufficientPositionError) Error() string {
	return fmt.Sprintf("on %s, cannot sell %s of %s: only %s held",
		e.On, e.Requested, e.Security, e.Held)
}

// InsufficientCashError reports a withdrawal (or, in strict mode, a buy)
// that would take a cash balance below zero.
type InsufficientCashError struct {
	Currency  string
	Requested Money
	Balance   Money
	On        date.Date
}

func (e *InsufficientCashError) Error() string {
	return fmt.Sprintf("on %s, cannot debit %s: cash balance is %s",
		e.On, e.Requested, e.Balance)
}

// PriceUnavailableError reports that a security has no usable price at or
// near a date. A valuation degrades gracefully on it instead of failing.
type PriceUnavailableError struct {
	Security string
	On       date.Date
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("no price for %s on or near %s", e.Security, e.On)
}

// ReplayError wraps an error raised while replaying the transaction history,
// carrying the position of the offending transaction in the input sequence
// so the caller can locate and fix the bad record.
type ReplayError struct {
	Index int // zero-based position in the ledger's transaction sequence
	Tx    Transaction
	Err   error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("transaction #%d (%s on %s): %v", e.Index, e.Tx.What(), e.Tx.When(), e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }
