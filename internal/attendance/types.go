package attendance

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type UpsertInput struct {
	Date   string // YYYY-MM-DD
	Status string
	Notes  string
}

// UpsertOutput reports whether the record was added or updated.
type UpsertOutput struct {
	Action string
	Record model.AttendanceRecord
}

type MonthInput struct {
	Year  int
	Month int
}

type Stats struct {
	Total   int
	Present int
	Absent  int
	Late    int
}

type MonthOutput struct {
	Year    int
	Month   int
	Records []model.AttendanceRecord
	Stats   Stats
}

type ExportInput struct {
	Format string
	Year   int
	Month  int
}

type ExportOutput struct {
	ContentType string
	FileName    string
	Body        []byte
}
