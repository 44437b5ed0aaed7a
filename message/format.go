package message

import (
	"fmt"
	"strconv"

	"bisttakip"
)

// Format renders a transaction back into broker message prose, using the
// primary template of each family. Parse(Format(tx)) yields a transaction
// equal to tx, which the fmt command relies on to echo ledger entries in the
// shape they arrived in.
func Format(tx bisttakip.Transaction) (string, error) {
	switch t := tx.(type) {
	case bisttakip.Buy:
		return fmt.Sprintf("%s hissesinden %s adet hisse %s TL fiyattan alınmıştır.",
			t.Security, t.Quantity, t.Price.Amount()), nil
	case bisttakip.Sell:
		return fmt.Sprintf("%s hissesinden %s adet hisse %s TL fiyattan satılmıştır.",
			t.Security, t.Quantity, t.Price.Amount()), nil
	case bisttakip.Dividend:
		return fmt.Sprintf("%s: %s.E senedi %%%s temettü ödemesi yapacaktır.",
			t.When().Format("02.01.2006"), t.Security, rateString(t.Rate)), nil
	case bisttakip.CapitalIncrease:
		return fmt.Sprintf("%s: %s.E senedi %%%s bedelsiz sermaye artırımı yapacaktır.",
			t.When().Format("02.01.2006"), t.Security, rateString(t.Rate)), nil
	case bisttakip.Deposit:
		return fmt.Sprintf("Hesabınıza %s TL yatırılmıştır.", t.Amount.Amount()), nil
	case bisttakip.Withdraw:
		return fmt.Sprintf("Hesabınızdan %s TL çekilmiştir.", t.Amount.Amount()), nil
	default:
		return "", fmt.Errorf("no message template for %q transactions", tx.What())
	}
}

func rateString(p bisttakip.Percent) string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
