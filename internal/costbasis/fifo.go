package costbasis

import (
	"github.com/shopspring/decimal"

	"costengine/internal/models"
)

// FIFOStrategy implements the First-In, First-Out cost basis method.
// Each position keeps an ordered queue of open lots; disposals consume
// from the oldest lot forward.
type FIFOStrategy struct {
	openLots map[models.LedgerKey][]*CostLot
}

// NewFIFOStrategy creates an empty FIFO ledger.
func NewFIFOStrategy() *FIFOStrategy {
	return &FIFOStrategy{openLots: make(map[models.LedgerKey][]*CostLot)}
}

// Acquire appends a new cost lot to the key's queue.
func (s *FIFOStrategy) Acquire(key models.LedgerKey, transactionID string, date models.Date, quantity, unitGrossCost, unitNetCost decimal.Decimal) {
	if quantity.IsZero() {
		return
	}
	s.openLots[key] = append(s.openLots[key], &CostLot{
		TransactionID:     transactionID,
		AcquisitionDate:   date,
		RemainingQuantity: quantity,
		UnitGrossCost:     unitGrossCost,
		UnitNetCost:       unitNetCost,
	})
}

// Available returns the total remaining quantity across the key's open lots.
func (s *FIFOStrategy) Available(key models.LedgerKey) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range s.openLots[key] {
		total = total.Add(lot.RemainingQuantity)
	}
	return total
}

// Dispose consumes quantity from the queue head forward. A lot larger than
// the remaining need is partially consumed and stays at the head; lots
// consumed exactly or fully are removed. The availability check happens
// up front so a failed disposal leaves the queue exactly as it was.
func (s *FIFOStrategy) Dispose(key models.LedgerKey, quantity decimal.Decimal) ([]Consumption, error) {
	available := s.Available(key)
	if quantity.GreaterThan(available) {
		return nil, &InsufficientHoldingsError{Key: key, Requested: quantity, Available: available}
	}
	if quantity.IsZero() {
		return nil, nil
	}

	var consumed []Consumption
	remaining := quantity
	queue := s.openLots[key]

	for len(queue) > 0 && remaining.IsPositive() {
		lot := queue[0]
		take := decimal.Min(lot.RemainingQuantity, remaining)

		consumed = append(consumed, Consumption{
			TransactionID: lot.TransactionID,
			Quantity:      take,
			UnitGrossCost: lot.UnitGrossCost,
			UnitNetCost:   lot.UnitNetCost,
		})

		lot.RemainingQuantity = lot.RemainingQuantity.Sub(take)
		remaining = remaining.Sub(take)
		if lot.RemainingQuantity.IsZero() {
			queue = queue[1:]
		}
	}

	s.openLots[key] = queue
	return consumed, nil
}

// OpenLots exposes the key's current lot queue for inspection in tests.
func (s *FIFOStrategy) OpenLots(key models.LedgerKey) []*CostLot {
	return s.openLots[key]
}
