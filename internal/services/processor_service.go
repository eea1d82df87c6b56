package services

import (
	"encoding/json"
	"time"

	"costengine/internal/costbasis"
	"costengine/internal/engine"
	"costengine/internal/logger"
	"costengine/internal/models"
)

// ProcessResult is the outcome of one batch: the costed new transactions
// and every per-record failure (validation and processing alike). A batch
// never fails wholesale because of one bad transaction.
type ProcessResult struct {
	Processed []models.Transaction
	Errored   []models.ErroredTransaction
}

// processorService orchestrates a batch end to end: per-record parsing,
// deterministic ordering, ledger replay, and error collection. Ledger
// state lives inside one call and is discarded afterwards.
type processorService struct {
	method    costbasis.Method
	parser    *Parser
	batchRuns BatchRunServicer
}

// NewProcessorService creates a ProcessorServicer applying the given cost
// basis method to every batch.
func NewProcessorService(method costbasis.Method, batchRuns BatchRunServicer) ProcessorServicer {
	return &processorService{
		method:    method,
		parser:    NewParser(),
		batchRuns: batchRuns,
	}
}

// ProcessBatch replays existing + new transactions in chronological order
// against a fresh ledger. Existing transactions only seed the ledger;
// only new transactions produce output records.
func (s *processorService) ProcessBatch(existing, incoming []json.RawMessage) *ProcessResult {
	start := time.Now()
	log := logger.Get()
	log.Infow("processing transaction batch",
		"existing", len(existing),
		"new", len(incoming),
		"method", s.method.String(),
	)

	reporter := engine.NewErrorReporter()

	existingTxns, existingErrs := s.parser.Parse(existing)
	for _, e := range existingErrs {
		reporter.Add(e.TransactionID, e.ErrorReason)
	}
	newTxns, newErrs := s.parser.Parse(incoming)
	for _, e := range newErrs {
		reporter.Add(e.TransactionID, e.ErrorReason)
	}

	eng := engine.New(costbasis.NewStrategy(s.method))
	processed := make([]models.Transaction, 0, len(newTxns))

	for _, ordered := range engine.Order(existingTxns, newTxns) {
		if ordered.Existing {
			eng.ApplyExisting(ordered.Transaction)
			continue
		}
		out, err := eng.ApplyNew(ordered.Transaction)
		if err != nil {
			reporter.Add(ordered.Transaction.TransactionID, err.Error())
			continue
		}
		processed = append(processed, out)
	}

	result := &ProcessResult{Processed: processed, Errored: reporter.Errors()}

	if s.batchRuns != nil {
		s.batchRuns.Record(&models.BatchRun{
			CostBasisMethod: s.method.String(),
			ExistingCount:   len(existing),
			NewCount:        len(incoming),
			ProcessedCount:  len(result.Processed),
			ErroredCount:    len(result.Errored),
			DurationMs:      time.Since(start).Milliseconds(),
		})
	}

	log.Infow("batch processed",
		"processed", len(result.Processed),
		"errored", len(result.Errored),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result
}
