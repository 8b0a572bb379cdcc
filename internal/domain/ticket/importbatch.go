package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BatchStatus string

const (
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusFailed     BatchStatus = "failed"
)

// ImportBatch tracks one bulk-import operation. It is bookkeeping, not a
// correctness dependency: ticket creation proceeds even when the batch row
// cannot be written.
type ImportBatch struct {
	id          string
	filename    string
	totalRows   int
	validRows   int
	errorRows   int
	status      BatchStatus
	createdAt   time.Time
	completedAt *time.Time
}

func NewImportBatch(filename string, totalRows int) (*ImportBatch, error) {
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if totalRows < 0 {
		return nil, fmt.Errorf("total rows cannot be negative")
	}

	return &ImportBatch{
		id:        uuid.NewString(),
		filename:  filename,
		totalRows: totalRows,
		status:    BatchStatusProcessing,
		createdAt: time.Now(),
	}, nil
}

func ReconstructImportBatch(
	id string,
	filename string,
	totalRows, validRows, errorRows int,
	status BatchStatus,
	createdAt time.Time,
	completedAt *time.Time,
) *ImportBatch {
	return &ImportBatch{
		id:          id,
		filename:    filename,
		totalRows:   totalRows,
		validRows:   validRows,
		errorRows:   errorRows,
		status:      status,
		createdAt:   createdAt,
		completedAt: completedAt,
	}
}

func (b *ImportBatch) ID() string              { return b.id }
func (b *ImportBatch) Filename() string        { return b.filename }
func (b *ImportBatch) TotalRows() int          { return b.totalRows }
func (b *ImportBatch) ValidRows() int          { return b.validRows }
func (b *ImportBatch) ErrorRows() int          { return b.errorRows }
func (b *ImportBatch) Status() BatchStatus     { return b.status }
func (b *ImportBatch) CreatedAt() time.Time    { return b.createdAt }
func (b *ImportBatch) CompletedAt() *time.Time { return b.completedAt }

func (b *ImportBatch) Complete(validRows, errorRows int) {
	now := time.Now()
	b.validRows = validRows
	b.errorRows = errorRows
	b.status = BatchStatusCompleted
	b.completedAt = &now
}

func (b *ImportBatch) Fail() {
	now := time.Now()
	b.status = BatchStatusFailed
	b.completedAt = &now
}
