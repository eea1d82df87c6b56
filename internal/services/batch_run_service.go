package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "costengine/internal/errors"
	"costengine/internal/logger"
	"costengine/internal/models"
	"costengine/internal/pagination"
)

// batchRunService persists batch run audit entries.
type batchRunService struct {
	db *gorm.DB
}

// NewBatchRunService creates a new BatchRunServicer.
func NewBatchRunService(db *gorm.DB) BatchRunServicer {
	return &batchRunService{db: db}
}

// Record writes one audit row for a processed batch. Errors are logged but
// never propagate; a failed audit write must not fail the batch response.
func (s *batchRunService) Record(run *models.BatchRun) {
	if err := s.db.Create(run).Error; err != nil {
		logger.Get().Errorw("failed to record batch run",
			"error", err,
			"method", run.CostBasisMethod,
			"new_count", run.NewCount,
		)
	}
}

// ListBatchRuns returns a paginated list of batch runs, newest first.
func (s *batchRunService) ListBatchRuns(page pagination.PageRequest) (*pagination.PageResponse[models.BatchRun], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.BatchRun{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var runs []models.BatchRun
	if err := s.db.Order("created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&runs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(runs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBatchRunByID returns a single batch run audit row.
func (s *batchRunService) GetBatchRunByID(id string) (*models.BatchRun, error) {
	var run models.BatchRun
	if err := s.db.First(&run, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBatchRunNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &run, nil
}
