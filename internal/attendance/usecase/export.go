package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

type exportRow struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// Export renders a month of records. An empty format means csv.
func (uc *implUseCase) Export(ctx context.Context, input attendance.ExportInput) (attendance.ExportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = attendance.FormatCSV
	}
	if format != attendance.FormatCSV && format != attendance.FormatJSON {
		return attendance.ExportOutput{}, attendance.ErrInvalidFormat
	}

	year, month, records, err := uc.listMonth(ctx, input.Year, input.Month)
	if err != nil {
		return attendance.ExportOutput{}, err
	}
	name := fmt.Sprintf("attendance_%d_%02d.%s", year, month, format)

	if format == attendance.FormatJSON {
		body, err := encodeJSON(records)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Export encodeJSON: %v", err)
			return attendance.ExportOutput{}, err
		}
		return attendance.ExportOutput{ContentType: "application/json", FileName: name, Body: body}, nil
	}

	body, err := encodeCSV(records)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export encodeCSV: %v", err)
		return attendance.ExportOutput{}, err
	}
	return attendance.ExportOutput{ContentType: "text/csv", FileName: name, Body: body}, nil
}

func encodeCSV(records []model.AttendanceRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"date", "status", "notes"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write([]string{r.Date, string(r.Status), r.Notes}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func encodeJSON(records []model.AttendanceRecord) ([]byte, error) {
	rows := make([]exportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, exportRow{Date: r.Date, Status: string(r.Status), Notes: r.Notes})
	}
	return json.Marshal(rows)
}
