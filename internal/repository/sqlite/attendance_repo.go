package sqlite

import (
	"context"
	"database/sql"

	"ponto/internal/domain"
)

type SqliteAttendanceRepo struct {
	db *sql.DB
}

func NewSqliteAttendanceRepo(db *sql.DB) *SqliteAttendanceRepo {
	return &SqliteAttendanceRepo{db: db}
}

func (r *SqliteAttendanceRepo) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, hr_begin, hr_end, dia, extra FROM ponto ORDER BY dia ASC, id ASC`,
	)
	if err != nil {
		return nil, domain.QueryError("list", err)
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var rec domain.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.ClockIn, &rec.ClockOut, &rec.WorkDate, &rec.OvertimeMinutes); err != nil {
			return nil, domain.QueryError("scan", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.QueryError("list", err)
	}
	return records, nil
}

func (r *SqliteAttendanceRepo) Insert(ctx context.Context, rec domain.AttendanceRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.QueryError("begin", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO ponto (hr_begin, hr_end, dia, extra) VALUES (?, ?, ?, ?)`,
		rec.ClockIn,
		rec.ClockOut,
		rec.WorkDate,
		rec.OvertimeMinutes,
	)
	if err != nil {
		return 0, domain.QueryError("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.QueryError("insert", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, domain.QueryError("commit", err)
	}
	return id, nil
}

// Delete commits only when a row was removed.
func (r *SqliteAttendanceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, domain.QueryError("begin", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM ponto WHERE id = ?`, id)
	if err != nil {
		return false, domain.QueryError("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.QueryError("delete", err)
	}
	if n == 0 {
		return false, nil
	}
	if err := tx.Commit(); err != nil {
		return false, domain.QueryError("commit", err)
	}
	return true, nil
}

func (r *SqliteAttendanceRepo) Close(ctx context.Context) error {
	return r.db.Close()
}
