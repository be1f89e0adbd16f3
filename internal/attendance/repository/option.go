package repository

import "github.com/gauravmalhotra04/raiden-ai/internal/model"

type UpsertRecordOptions struct {
	Date   string
	Status model.AttendanceStatus
	Notes  string
}

// ListRecordsOptions filters by date in [DateFrom, DateTo). Empty bounds are open.
type ListRecordsOptions struct {
	DateFrom string
	DateTo   string
}
