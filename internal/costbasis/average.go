package costbasis

import (
	"github.com/shopspring/decimal"

	"costengine/internal/models"
)

// position is the single aggregate holding the weighted-average method
// keeps per ledger key.
type position struct {
	Quantity     decimal.Decimal
	AvgUnitGross decimal.Decimal
	AvgUnitNet   decimal.Decimal
}

// AverageCostStrategy implements the weighted-average cost basis method.
// Each position is one blended lot; acquisitions recompute the average
// unit costs, disposals reduce quantity only.
type AverageCostStrategy struct {
	positions map[models.LedgerKey]*position
}

// NewAverageCostStrategy creates an empty average-cost ledger.
func NewAverageCostStrategy() *AverageCostStrategy {
	return &AverageCostStrategy{positions: make(map[models.LedgerKey]*position)}
}

// Acquire folds the new quantity into the position's weighted averages:
// newAvg = (oldQty*oldAvg + qty*unitCost) / (oldQty + qty).
func (s *AverageCostStrategy) Acquire(key models.LedgerKey, transactionID string, date models.Date, quantity, unitGrossCost, unitNetCost decimal.Decimal) {
	if quantity.IsZero() {
		return
	}
	pos, ok := s.positions[key]
	if !ok {
		s.positions[key] = &position{
			Quantity:     quantity,
			AvgUnitGross: unitGrossCost,
			AvgUnitNet:   unitNetCost,
		}
		return
	}

	newQuantity := pos.Quantity.Add(quantity)
	pos.AvgUnitGross = pos.Quantity.Mul(pos.AvgUnitGross).
		Add(quantity.Mul(unitGrossCost)).
		Div(newQuantity)
	pos.AvgUnitNet = pos.Quantity.Mul(pos.AvgUnitNet).
		Add(quantity.Mul(unitNetCost)).
		Div(newQuantity)
	pos.Quantity = newQuantity
}

// Available returns the position's aggregate quantity.
func (s *AverageCostStrategy) Available(key models.LedgerKey) decimal.Decimal {
	if pos, ok := s.positions[key]; ok {
		return pos.Quantity
	}
	return decimal.Zero
}

// Dispose consumes quantity at the current average unit costs. The averages
// are unchanged by disposal; only acquisitions move them.
func (s *AverageCostStrategy) Dispose(key models.LedgerKey, quantity decimal.Decimal) ([]Consumption, error) {
	available := s.Available(key)
	if quantity.GreaterThan(available) {
		return nil, &InsufficientHoldingsError{Key: key, Requested: quantity, Available: available}
	}
	if quantity.IsZero() {
		return nil, nil
	}

	pos := s.positions[key]
	pos.Quantity = pos.Quantity.Sub(quantity)

	return []Consumption{{
		Quantity:      quantity,
		UnitGrossCost: pos.AvgUnitGross,
		UnitNetCost:   pos.AvgUnitNet,
	}}, nil
}
