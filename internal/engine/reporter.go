package engine

import "costengine/internal/models"

// ErrorReporter accumulates per-transaction failures without aborting the
// batch. Entries are append-only and kept in processing order; repeated
// failures for the same transaction are not deduplicated.
type ErrorReporter struct {
	errored []models.ErroredTransaction
}

// NewErrorReporter creates an empty reporter.
func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{}
}

// Add records a failure for the given transaction.
func (r *ErrorReporter) Add(transactionID, reason string) {
	r.errored = append(r.errored, models.ErroredTransaction{
		TransactionID: transactionID,
		ErrorReason:   reason,
	})
}

// Errors returns the collected failures in insertion order. The slice is
// never nil so it serializes as an empty JSON array.
func (r *ErrorReporter) Errors() []models.ErroredTransaction {
	if r.errored == nil {
		return []models.ErroredTransaction{}
	}
	return r.errored
}

// HasErrors reports whether any failure has been recorded.
func (r *ErrorReporter) HasErrors() bool {
	return len(r.errored) > 0
}
