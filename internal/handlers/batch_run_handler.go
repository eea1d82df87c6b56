package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costengine/internal/errors"
	"costengine/internal/pagination"
	"costengine/internal/services"
	"costengine/internal/uuid"
)

// BatchRunHandler handles batch run audit queries.
type BatchRunHandler struct {
	batchRunService services.BatchRunServicer
}

// NewBatchRunHandler creates a new BatchRunHandler.
func NewBatchRunHandler(batchRunService services.BatchRunServicer) *BatchRunHandler {
	return &BatchRunHandler{batchRunService: batchRunService}
}

// ListBatchRuns handles listing batch run audit entries.
// @Summary     List batch runs
// @Description Get a paginated list of batch run audit entries, newest first
// @Tags        batches
// @Produce     json
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.BatchRun] "Batch runs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /batches [get]
func (h *BatchRunHandler) ListBatchRuns(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	runs, err := h.batchRunService.ListBatchRuns(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, runs)
}

// GetBatchRun handles fetching one batch run by ID.
// @Summary     Get batch run
// @Description Get a single batch run audit entry by its ID
// @Tags        batches
// @Produce     json
// @Param       id path string true "Batch run ID"
// @Success     200 {object} models.BatchRun "Batch run"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /batches/{id} [get]
func (h *BatchRunHandler) GetBatchRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid batch run ID"))
		return
	}

	run, err := h.batchRunService.GetBatchRunByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}
