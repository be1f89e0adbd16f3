package repository

import (
	"context"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

// Repository stores one attendance record per calendar day.
// GetRecord returns a zero value for a missing id.
type Repository interface {
	// UpsertRecord inserts or replaces the record for opt.Date. created reports an insert.
	UpsertRecord(ctx context.Context, opt UpsertRecordOptions) (rec model.AttendanceRecord, created bool, err error)
	GetRecord(ctx context.Context, id string) (model.AttendanceRecord, error)
	ListRecords(ctx context.Context, opt ListRecordsOptions) ([]model.AttendanceRecord, error)
	DeleteRecord(ctx context.Context, id string) (bool, error)
}
