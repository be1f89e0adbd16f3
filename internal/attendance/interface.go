package attendance

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Upsert records the status of a day, replacing any earlier record for that date.
	Upsert(ctx context.Context, input UpsertInput) (UpsertOutput, error)
	// Month lists a calendar month with its totals. Zero Year/Month mean the current month.
	Month(ctx context.Context, input MonthInput) (MonthOutput, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
