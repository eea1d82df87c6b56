package models

// BatchRun is the audit record written once per processed batch. It holds
// only run metadata; ledger state is never persisted, every batch starts
// from the existing transactions supplied in the request.
type BatchRun struct {
	Base
	CostBasisMethod string `gorm:"not null" json:"cost_basis_method"`
	ExistingCount   int    `gorm:"not null" json:"existing_count"`
	NewCount        int    `gorm:"not null" json:"new_count"`
	ProcessedCount  int    `gorm:"not null" json:"processed_count"`
	ErroredCount    int    `gorm:"not null" json:"errored_count"`
	DurationMs      int64  `gorm:"not null" json:"duration_ms"`
}
