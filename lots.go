package bisttakip

import (
	"bisttakip/date"
)

// lot represents a single acquisition batch of a security, kept with its own
// cost basis for FIFO accounting.
type lot struct {
	Date     date.Date
	Quantity Quantity
	Cost     Money // total cost of the lot (quantity * unit price at acquisition)
}

// unitCost returns the cost basis per share of the lot.
func (l lot) unitCost() Money {
	if l.Quantity.IsZero() {
		return Money{cur: l.Cost.Currency()}
	}
	return l.Cost.Div(l.Quantity)
}

type lots []lot

// totalQuantity returns the sum of all lot quantities.
func (l lots) totalQuantity() Quantity {
	var total Quantity
	for _, currentLot := range l {
		total = total.Add(currentLot.Quantity)
	}
	return total
}

// totalCost returns the unrecovered cost basis across all lots.
func (l lots) totalCost() Money {
	var total Money
	for _, currentLot := range l {
		total = total.Add(currentLot.Cost)
	}
	return total
}

// averageCost returns the cost basis per share across all lots.
func (l lots) averageCost() Money {
	qty := l.totalQuantity()
	if qty.IsZero() {
		return Money{cur: l.totalCost().Currency()}
	}
	return l.totalCost().Div(qty)
}

// costOfSelling calculates the cost basis of selling a quantity of shares
// using FIFO: oldest lots are consumed first, the last one possibly partially.
func (l lots) costOfSelling(quantityToSell Quantity) Money {
	var costOfSoldShares Money
	for _, currentLot := range l {
		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			costOfSoldPortion := currentLot.Cost.Mul(quantityToSell).Div(currentLot.Quantity)
			return costOfSoldShares.Add(costOfSoldPortion)
		}
		// Full sale of this lot
		costOfSoldShares = costOfSoldShares.Add(currentLot.Cost)
		quantityToSell = quantityToSell.Sub(currentLot.Quantity)
	}
	return costOfSoldShares
}

// sell reduces the available lots by a given quantity using the FIFO method.
// A partially consumed lot keeps its acquisition date, its cost shrinks
// proportionally.
func (l lots) sell(quantityToSell Quantity) lots {
	var remainingLots lots
	for _, currentLot := range l {
		if quantityToSell.IsZero() {
			remainingLots = append(remainingLots, currentLot)
			continue
		}
		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			costOfSoldPortion := currentLot.Cost.Mul(quantityToSell).Div(currentLot.Quantity)
			remainingLots = append(remainingLots, lot{
				Date:     currentLot.Date,
				Quantity: currentLot.Quantity.Sub(quantityToSell),
				Cost:     currentLot.Cost.Sub(costOfSoldPortion),
			})
			quantityToSell = Q(0)
		} else {
			// Full sale of this lot
			quantityToSell = quantityToSell.Sub(currentLot.Quantity)
		}
	}
	return remainingLots
}

// scale multiplies every lot quantity by the given factor, leaving each lot's
// total cost untouched. This is the bonus-share (bedelsiz) semantics: the new
// shares are free, so the unit cost dilutes while the basis is unchanged.
func (l lots) scale(factor Quantity) lots {
	scaled := make(lots, 0, len(l))
	for _, currentLot := range l {
		scaled = append(scaled, lot{
			Date:     currentLot.Date,
			Quantity: currentLot.Quantity.Mul(factor),
			Cost:     currentLot.Cost,
		})
	}
	return scaled
}
