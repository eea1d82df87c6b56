package costbasis

import (
	"fmt"

	"github.com/shopspring/decimal"

	"costengine/internal/models"
)

// Consumption records the quantity taken from a single source lot during
// a disposal, along with the unit costs the quantity was matched at.
// Weighted-average disposals report the whole position as one consumption
// with an empty TransactionID.
type Consumption struct {
	TransactionID string
	Quantity      decimal.Decimal
	UnitGrossCost decimal.Decimal
	UnitNetCost   decimal.Decimal
}

// Strategy is the polymorphic cost basis policy. Implementations own the
// ledger for one batch and are not safe for concurrent use; transactions
// must be applied strictly in chronological order.
type Strategy interface {
	// Acquire adds quantity at the given unit costs to the position
	// identified by key. A zero-quantity acquisition is a no-op.
	Acquire(key models.LedgerKey, transactionID string, date models.Date, quantity, unitGrossCost, unitNetCost decimal.Decimal)

	// Dispose consumes quantity from the position identified by key and
	// returns the ordered consumptions it was matched against. Disposal is
	// all-or-nothing: if quantity exceeds the available holdings it returns
	// an *InsufficientHoldingsError and leaves the ledger untouched.
	Dispose(key models.LedgerKey, quantity decimal.Decimal) ([]Consumption, error)

	// Available returns the total open quantity for key.
	Available(key models.LedgerKey) decimal.Decimal
}

// InsufficientHoldingsError reports a disposal that requested more quantity
// than the ledger holds for its key.
type InsufficientHoldingsError struct {
	Key       models.LedgerKey
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientHoldingsError) Error() string {
	return fmt.Sprintf(
		"Sell quantity (%s) exceeds available holdings (%s) for instrument '%s' in portfolio '%s'.",
		e.Requested.StringFixed(2), e.Available.StringFixed(2),
		e.Key.InstrumentID, e.Key.PortfolioID,
	)
}
