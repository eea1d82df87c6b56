package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"costengine/internal/models"
)

// Dec parses a decimal literal, failing the test on malformed input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal literal %q: %v", s, err)
	}
	return d
}

// DecPtr parses a decimal literal and returns a pointer to it.
func DecPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := Dec(t, s)
	return &d
}

// Day builds a Date for the given day of January 2023, keeping fixture
// dates short and unambiguous.
func Day(day int) models.Date {
	return models.NewDate(2023, time.January, day)
}

// BuyTransaction builds a minimal valid BUY for the given key, date,
// quantity, and gross amount.
func BuyTransaction(id, portfolioID, instrumentID string, date models.Date, quantity, gross string) models.Transaction {
	return models.Transaction{
		TransactionID:          id,
		PortfolioID:            portfolioID,
		InstrumentID:           instrumentID,
		SecurityID:             "SEC-" + instrumentID,
		TransactionType:        models.TransactionTypeBuy,
		TransactionDate:        date,
		SettlementDate:         models.Date{Time: date.AddDate(0, 0, 2)},
		Quantity:               decimal.RequireFromString(quantity),
		GrossTransactionAmount: decimal.RequireFromString(gross),
		TradeCurrency:          "USD",
	}
}

// SellTransaction builds a minimal valid SELL for the given key, date,
// quantity, and gross amount.
func SellTransaction(id, portfolioID, instrumentID string, date models.Date, quantity, gross string) models.Transaction {
	txn := BuyTransaction(id, portfolioID, instrumentID, date, quantity, gross)
	txn.TransactionType = models.TransactionTypeSell
	return txn
}

// Raw marshals transactions into the raw records the processor consumes.
func Raw(t *testing.T, txns ...models.Transaction) []json.RawMessage {
	t.Helper()
	raw := make([]json.RawMessage, 0, len(txns))
	for _, txn := range txns {
		data, err := json.Marshal(txn)
		if err != nil {
			t.Fatalf("failed to marshal fixture transaction %s: %v", txn.TransactionID, err)
		}
		raw = append(raw, data)
	}
	return raw
}
