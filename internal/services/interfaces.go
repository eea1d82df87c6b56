package services

import (
	"encoding/json"

	"costengine/internal/models"
	"costengine/internal/pagination"
)

// ProcessorServicer processes transaction batches.
type ProcessorServicer interface {
	ProcessBatch(existing, incoming []json.RawMessage) *ProcessResult
}

// BatchRunServicer records and exposes batch run audit entries.
type BatchRunServicer interface {
	Record(run *models.BatchRun)
	ListBatchRuns(page pagination.PageRequest) (*pagination.PageResponse[models.BatchRun], error)
	GetBatchRunByID(id string) (*models.BatchRun, error)
}
