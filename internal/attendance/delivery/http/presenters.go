package http

import (
	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

type upsertReq struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (r upsertReq) toInput() attendance.UpsertInput {
	return attendance.UpsertInput{Date: r.Date, Status: r.Status, Notes: r.Notes}
}

type monthReq struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

type exportReq struct {
	Format string `form:"format"`
	Year   int    `form:"year"`
	Month  int    `form:"month"`
}

type recordResp struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func newRecordResp(r model.AttendanceRecord) recordResp {
	return recordResp{
		ID:     r.ID,
		Date:   r.Date,
		Status: string(r.Status),
		Notes:  r.Notes,
	}
}

type upsertResp struct {
	Action string     `json:"action"`
	Record recordResp `json:"record"`
}

type statsResp struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

type monthResp struct {
	Year       int          `json:"year"`
	Month      int          `json:"month"`
	Attendance []recordResp `json:"attendance"`
	Stats      statsResp    `json:"stats"`
}

func newMonthResp(out attendance.MonthOutput) monthResp {
	resp := monthResp{
		Year:       out.Year,
		Month:      out.Month,
		Attendance: make([]recordResp, 0, len(out.Records)),
		Stats: statsResp{
			Total:   out.Stats.Total,
			Present: out.Stats.Present,
			Absent:  out.Stats.Absent,
			Late:    out.Stats.Late,
		},
	}
	for _, r := range out.Records {
		resp.Attendance = append(resp.Attendance, newRecordResp(r))
	}
	return resp
}

type deleteResp struct {
	ID string `json:"id"`
}
