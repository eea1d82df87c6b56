package costbasis

import (
	"github.com/shopspring/decimal"

	"costengine/internal/models"
)

// CostLot is a record of an acquisition's remaining quantity and unit
// costs, awaiting disposal. A lot is owned exclusively by the ledger
// entry that created it and is never shared across keys.
type CostLot struct {
	TransactionID     string
	AcquisitionDate   models.Date
	RemainingQuantity decimal.Decimal
	UnitGrossCost     decimal.Decimal
	UnitNetCost       decimal.Decimal
}
