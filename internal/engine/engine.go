// Package engine applies ordered transactions against a holdings ledger
// and derives cost basis and realized gain/loss per transaction.
package engine

import (
	"github.com/shopspring/decimal"

	"costengine/internal/costbasis"
	"costengine/internal/logger"
	"costengine/internal/models"
)

// Output monetary fields carry two decimal places; computed average
// prices carry four.
const (
	moneyScale = 2
	priceScale = 4
)

// Engine replays transactions against a single-batch ledger via the
// configured cost basis strategy. The ledger is the only carried-forward
// state; every transaction is otherwise processed independently.
type Engine struct {
	strategy costbasis.Strategy
}

// New creates an engine around a fresh strategy. One engine serves
// exactly one batch.
func New(strategy costbasis.Strategy) *Engine {
	return &Engine{strategy: strategy}
}

// ApplyExisting replays an already-costed transaction to seed the ledger.
// Existing BUYs open lots at the unit costs implied by their reported
// cost fields; existing SELLs consume holdings. Failures are logged but
// never reported, since existing records are historical facts and only
// new transactions belong in the batch output.
func (e *Engine) ApplyExisting(txn models.Transaction) {
	switch txn.TransactionType {
	case models.TransactionTypeBuy:
		grossCost, netCost := e.buyCosts(&txn)
		e.acquire(&txn, grossCost, netCost)
	case models.TransactionTypeSell:
		if _, err := e.strategy.Dispose(txn.Key(), txn.Quantity); err != nil {
			logger.Get().Warnw("existing sell exceeds replayed holdings",
				"transaction_id", txn.TransactionID,
				"error", err.Error(),
			)
		}
	}
}

// ApplyNew processes a new transaction and returns a copy with the
// computed fields populated. On failure the ledger is left untouched for
// the transaction's key and no output record is produced.
func (e *Engine) ApplyNew(txn models.Transaction) (models.Transaction, error) {
	switch txn.TransactionType {
	case models.TransactionTypeBuy:
		return e.applyBuy(txn), nil
	case models.TransactionTypeSell:
		return e.applySell(txn)
	default:
		return applyPassthrough(txn), nil
	}
}

// applyBuy computes the acquisition's costs, opens a lot, and populates
// the transaction's own cost fields. Acquisitions never realize gain/loss.
func (e *Engine) applyBuy(txn models.Transaction) models.Transaction {
	grossCost, netCost := e.buyCosts(&txn)
	e.acquire(&txn, grossCost, netCost)

	txn.GrossCost = rounded(grossCost, moneyScale)
	txn.NetCost = rounded(netCost, moneyScale)
	txn.RealizedGainLoss = nil
	if txn.AveragePrice == nil {
		if txn.Quantity.IsPositive() {
			txn.AveragePrice = rounded(netCost.Div(txn.Quantity), priceScale)
		} else {
			txn.AveragePrice = rounded(decimal.Zero, priceScale)
		}
	}
	return txn
}

// applySell disposes the sell quantity against the ledger and derives the
// matched cost basis and realized gain/loss.
func (e *Engine) applySell(txn models.Transaction) (models.Transaction, error) {
	consumed, err := e.strategy.Dispose(txn.Key(), txn.Quantity)
	if err != nil {
		return models.Transaction{}, err
	}

	grossCost := decimal.Zero
	netCost := decimal.Zero
	for _, c := range consumed {
		grossCost = grossCost.Add(c.Quantity.Mul(c.UnitGrossCost))
		netCost = netCost.Add(c.Quantity.Mul(c.UnitNetCost))
	}

	proceeds := txn.GrossTransactionAmount.Sub(txn.Fees.Total())
	if txn.NetTransactionAmount != nil {
		proceeds = *txn.NetTransactionAmount
	}

	txn.GrossCost = rounded(grossCost, moneyScale)
	txn.NetCost = rounded(netCost, moneyScale)
	if txn.Quantity.IsPositive() {
		txn.RealizedGainLoss = rounded(proceeds.Sub(netCost), moneyScale)
		txn.AveragePrice = rounded(netCost.Div(txn.Quantity), priceScale)
	} else {
		txn.RealizedGainLoss = rounded(decimal.Zero, moneyScale)
		txn.AveragePrice = rounded(decimal.Zero, priceScale)
	}
	return txn, nil
}

// applyPassthrough handles the non-BUY/SELL types (interest, dividends,
// transfers and the like). They mirror their transaction amounts into the
// cost fields without touching the ledger and never realize gain/loss.
func applyPassthrough(txn models.Transaction) models.Transaction {
	grossCost := txn.GrossTransactionAmount
	netCost := grossCost
	if txn.NetTransactionAmount != nil {
		netCost = *txn.NetTransactionAmount
	}
	txn.GrossCost = rounded(grossCost, moneyScale)
	txn.NetCost = rounded(netCost, moneyScale)
	txn.RealizedGainLoss = nil
	return txn
}

// buyCosts derives an acquisition's gross and net cost. Reported cost
// fields take precedence (existing transactions); otherwise gross is the
// transaction amount and net falls back to gross plus total fees plus
// accrued interest when no net amount was supplied.
func (e *Engine) buyCosts(txn *models.Transaction) (grossCost, netCost decimal.Decimal) {
	grossCost = txn.GrossTransactionAmount
	if txn.GrossCost != nil {
		grossCost = *txn.GrossCost
	}
	switch {
	case txn.NetCost != nil:
		netCost = *txn.NetCost
	case txn.NetTransactionAmount != nil:
		netCost = *txn.NetTransactionAmount
	default:
		netCost = grossCost.Add(txn.Fees.Total()).Add(txn.AccruedInterest)
	}
	return grossCost, netCost
}

// acquire opens a lot at full-precision unit costs. Zero-quantity buys
// open no lot.
func (e *Engine) acquire(txn *models.Transaction, grossCost, netCost decimal.Decimal) {
	if !txn.Quantity.IsPositive() {
		return
	}
	e.strategy.Acquire(
		txn.Key(),
		txn.TransactionID,
		txn.TransactionDate,
		txn.Quantity,
		grossCost.Div(txn.Quantity),
		netCost.Div(txn.Quantity),
	)
}

// rounded returns a pointer to d rounded half-up to the given scale.
func rounded(d decimal.Decimal, scale int32) *decimal.Decimal {
	r := d.Round(scale)
	return &r
}
