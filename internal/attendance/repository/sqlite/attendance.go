package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	sqliteCfg "github.com/gauravmalhotra04/raiden-ai/config/sqlite"
	repo "github.com/gauravmalhotra04/raiden-ai/internal/attendance/repository"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
)

const selectColumns = `SELECT id, date, status, notes, created_at FROM attendance`

// UpsertRecord keeps the id and created_at of an existing record for the same date.
func (r *implRepository) UpsertRecord(ctx context.Context, opt repo.UpsertRecordOptions) (model.AttendanceRecord, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertRecord"), err)
		return model.AttendanceRecord{}, false, repo.ErrFailedToUpsert
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := r.scan(tx.QueryRowContext(ctx, selectColumns+` WHERE date = ?`, opt.Date))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("UpsertRecord"), err)
		return model.AttendanceRecord{}, false, repo.ErrFailedToUpsert
	}
	created := errors.Is(err, sql.ErrNoRows)

	rec := model.AttendanceRecord{
		Date:   opt.Date,
		Status: opt.Status,
		Notes:  opt.Notes,
	}
	if created {
		rec.ID = uuid.NewString()
		rec.CreatedAt = r.now().In(r.loc).Truncate(time.Second)
		_, err = tx.ExecContext(ctx,
			`INSERT INTO attendance (id, date, status, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
			rec.ID, rec.Date, string(rec.Status), rec.Notes, rec.CreatedAt.Format(sqliteCfg.TimeLayout))
	} else {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		_, err = tx.ExecContext(ctx,
			`UPDATE attendance SET status = ?, notes = ? WHERE id = ?`,
			string(rec.Status), rec.Notes, rec.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s write: %v", r.dsn("UpsertRecord"), err)
		return model.AttendanceRecord{}, false, repo.ErrFailedToUpsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertRecord"), err)
		return model.AttendanceRecord{}, false, repo.ErrFailedToUpsert
	}
	return rec, created, nil
}

func (r *implRepository) GetRecord(ctx context.Context, id string) (model.AttendanceRecord, error) {
	rec, err := r.scan(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.AttendanceRecord{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRecord"), err)
		return model.AttendanceRecord{}, repo.ErrFailedToGet
	}
	return rec, nil
}

// ListRecords returns records ordered by date. Dates are YYYY-MM-DD so they compare as text.
func (r *implRepository) ListRecords(ctx context.Context, opt repo.ListRecordsOptions) ([]model.AttendanceRecord, error) {
	var (
		conds []string
		args  []any
	)
	if opt.DateFrom != "" {
		conds = append(conds, "date >= ?")
		args = append(args, opt.DateFrom)
	}
	if opt.DateTo != "" {
		conds = append(conds, "date < ?")
		args = append(args, opt.DateTo)
	}

	query := selectColumns
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecords"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRecords"), err)
			return nil, repo.ErrFailedToList
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *implRepository) DeleteRecord(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRecord"), err)
		return false, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scan(row rowScanner) (model.AttendanceRecord, error) {
	var (
		rec       model.AttendanceRecord
		status    string
		createdAt string
	)
	if err := row.Scan(&rec.ID, &rec.Date, &status, &rec.Notes, &createdAt); err != nil {
		return model.AttendanceRecord{}, err
	}
	t, err := time.ParseInLocation(sqliteCfg.TimeLayout, createdAt, r.loc)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	rec.Status = model.AttendanceStatus(status)
	rec.CreatedAt = t
	return rec, nil
}
