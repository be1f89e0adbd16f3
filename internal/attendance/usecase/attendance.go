package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/attendance/repository"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
)

const dateLayout = "2006-01-02"

func (uc *implUseCase) Upsert(ctx context.Context, input attendance.UpsertInput) (attendance.UpsertOutput, error) {
	day, err := uc.dateMath.ParseDay(input.Date)
	if err != nil {
		return attendance.UpsertOutput{}, attendance.ErrInvalidDate
	}
	status := model.AttendanceStatus(strings.ToLower(strings.TrimSpace(input.Status)))
	if !status.Valid() {
		return attendance.UpsertOutput{}, attendance.ErrInvalidStatus
	}

	rec, created, err := uc.repo.UpsertRecord(ctx, repo.UpsertRecordOptions{
		Date:   day.Format(dateLayout),
		Status: status,
		Notes:  strings.TrimSpace(input.Notes),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertRecord: %v", err)
		return attendance.UpsertOutput{}, err
	}

	action := notification.ActionUpdated
	if created {
		action = notification.ActionAdded
	}
	uc.publish(ctx, notification.NewAttendanceUpdateEvent(action, rec))

	return attendance.UpsertOutput{Action: action, Record: rec}, nil
}

func (uc *implUseCase) Month(ctx context.Context, input attendance.MonthInput) (attendance.MonthOutput, error) {
	year, month, records, err := uc.listMonth(ctx, input.Year, input.Month)
	if err != nil {
		return attendance.MonthOutput{}, err
	}

	return attendance.MonthOutput{
		Year:    year,
		Month:   month,
		Records: records,
		Stats:   stats(records),
	}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	rec, err := uc.repo.GetRecord(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetRecord: %v", err)
		return err
	}
	if rec.ID == "" {
		return attendance.ErrRecordNotFound
	}

	deleted, err := uc.repo.DeleteRecord(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteRecord: %v", err)
		return err
	}
	if !deleted {
		return attendance.ErrRecordNotFound
	}

	uc.publish(ctx, notification.NewAttendanceDeletedEvent(id))
	return nil
}

// listMonth resolves zero year/month to the current month in the planner timezone.
func (uc *implUseCase) listMonth(ctx context.Context, year, month int) (int, int, []model.AttendanceRecord, error) {
	now := uc.now().In(uc.dateMath.Location())
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if year < 1 || year > 9999 {
		return 0, 0, nil, attendance.ErrInvalidMonth
	}

	window, err := uc.dateMath.Month(year, time.Month(month))
	if err != nil {
		return 0, 0, nil, attendance.ErrInvalidMonth
	}

	records, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{
		DateFrom: window.From.Format(dateLayout),
		DateTo:   window.To.Format(dateLayout),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.listMonth ListRecords: %v", err)
		return 0, 0, nil, err
	}
	return year, month, records, nil
}

func stats(records []model.AttendanceRecord) attendance.Stats {
	s := attendance.Stats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.AttendancePresent:
			s.Present++
		case model.AttendanceAbsent:
			s.Absent++
		case model.AttendanceLate:
			s.Late++
		}
	}
	return s
}

func (uc *implUseCase) publish(ctx context.Context, event notification.Event) {
	if err := uc.sink.Publish(ctx, event); err != nil {
		uc.l.Warnf(ctx, "uc.publish %s: %v", event.Name, err)
	}
}
