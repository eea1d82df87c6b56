package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType represents the classification of a financial transaction.
type TransactionType string

const (
	TransactionTypeBuy        TransactionType = "BUY"
	TransactionTypeSell       TransactionType = "SELL"
	TransactionTypeInterest   TransactionType = "INTEREST"
	TransactionTypeDividend   TransactionType = "DIVIDEND"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeFee        TransactionType = "FEE"
	TransactionTypeOther      TransactionType = "OTHER"
)

// Valid reports whether t is a recognized transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeBuy, TransactionTypeSell, TransactionTypeInterest,
		TransactionTypeDividend, TransactionTypeDeposit,
		TransactionTypeWithdrawal, TransactionTypeFee, TransactionTypeOther:
		return true
	}
	return false
}

// Fees is the breakdown of named fee categories on a transaction.
// Categories missing from the input default to zero, so a processed
// transaction always carries the full normalized mapping.
type Fees struct {
	StampDuty   decimal.Decimal `json:"stamp_duty" validate:"gte=0"`
	ExchangeFee decimal.Decimal `json:"exchange_fee" validate:"gte=0"`
	GST         decimal.Decimal `json:"gst" validate:"gte=0"`
	Brokerage   decimal.Decimal `json:"brokerage" validate:"gte=0"`
	OtherFees   decimal.Decimal `json:"other_fees" validate:"gte=0"`
}

// Total returns the sum of all fee categories.
func (f Fees) Total() decimal.Decimal {
	return f.StampDuty.
		Add(f.ExchangeFee).
		Add(f.GST).
		Add(f.Brokerage).
		Add(f.OtherFees)
}

// Transaction represents a single financial transaction. The engine never
// mutates an input transaction; processing produces a new record with the
// computed fields populated.
type Transaction struct {
	TransactionID          string           `json:"transaction_id" validate:"required"`
	PortfolioID            string           `json:"portfolio_id" validate:"required"`
	InstrumentID           string           `json:"instrument_id" validate:"required"`
	SecurityID             string           `json:"security_id" validate:"required"`
	TransactionType        TransactionType  `json:"transaction_type" validate:"required,transaction_type"`
	TransactionDate        Date             `json:"transaction_date" validate:"required"`
	SettlementDate         Date             `json:"settlement_date" validate:"required"`
	Quantity               decimal.Decimal  `json:"quantity" validate:"gte=0"`
	GrossTransactionAmount decimal.Decimal  `json:"gross_transaction_amount" validate:"gte=0"`
	NetTransactionAmount   *decimal.Decimal `json:"net_transaction_amount,omitempty" validate:"omitempty,gte=0"`
	Fees                   Fees             `json:"fees"`
	AccruedInterest        decimal.Decimal  `json:"accrued_interest" validate:"gte=0"`
	AveragePrice           *decimal.Decimal `json:"average_price,omitempty" validate:"omitempty,gte=0"`
	TradeCurrency          string           `json:"trade_currency" validate:"required,iso4217"`

	// Computed fields, populated by the disposition engine. Existing
	// transactions arrive with these already set by a previous run.
	GrossCost        *decimal.Decimal `json:"gross_cost,omitempty"`
	NetCost          *decimal.Decimal `json:"net_cost,omitempty"`
	RealizedGainLoss *decimal.Decimal `json:"realized_gain_loss,omitempty"`
	ErrorReason      *string          `json:"error_reason,omitempty"`
}

// Key identifies the holdings position a transaction applies to.
func (t *Transaction) Key() LedgerKey {
	return LedgerKey{PortfolioID: t.PortfolioID, InstrumentID: t.InstrumentID}
}

// LedgerKey is the (portfolio, instrument) pair identifying one holdings position.
type LedgerKey struct {
	PortfolioID  string
	InstrumentID string
}

// ErroredTransaction represents a transaction that failed validation or
// processing, along with the reason for the failure.
type ErroredTransaction struct {
	TransactionID string `json:"transaction_id"`
	ErrorReason   string `json:"error_reason"`
}
