package engine

import (
	"sort"

	"costengine/internal/models"
)

// OrderedTransaction tags a transaction with its origin so the engine can
// tell seed records from the ones that produce output.
type OrderedTransaction struct {
	Transaction models.Transaction
	Existing    bool
}

// Order merges the existing and new collections into one deterministic
// processing sequence: transaction date ascending, then existing before
// new (existing records must seed the ledger before new ones consume it),
// then transaction ID ascending. Input order is never trusted to reflect
// chronology.
func Order(existing, incoming []models.Transaction) []OrderedTransaction {
	merged := make([]OrderedTransaction, 0, len(existing)+len(incoming))
	for _, txn := range existing {
		merged = append(merged, OrderedTransaction{Transaction: txn, Existing: true})
	}
	for _, txn := range incoming {
		merged = append(merged, OrderedTransaction{Transaction: txn})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if !a.Transaction.TransactionDate.Equal(b.Transaction.TransactionDate) {
			return a.Transaction.TransactionDate.Before(b.Transaction.TransactionDate)
		}
		if a.Existing != b.Existing {
			return a.Existing
		}
		return a.Transaction.TransactionID < b.Transaction.TransactionID
	})
	return merged
}
