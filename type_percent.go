package bisttakip

import "fmt"

// Percent is a percentage value: 45.2 means 45.2%.
// Dividend and capital-increase announcements on BIST are expressed this way.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// Factor returns the growth factor of a capital increase of p percent,
// e.g. a 900% bonus issue has factor 10.
func (p Percent) Factor() Quantity {
	return Q(1 + float64(p)/100)
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
