package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ponto/internal/domain"
)

const (
	listAttendanceQuery = `
		SELECT id, to_char(hr_begin, 'HH24:MI'), to_char(hr_end, 'HH24:MI'), to_char(dia, 'YYYY-MM-DD'), extra
		FROM public.ponto
		ORDER BY dia ASC, id ASC`

	insertAttendanceQuery = `
		INSERT INTO public.ponto (hr_begin, hr_end, dia, extra)
		VALUES ($1::time, $2::time, $3::date, $4)
		RETURNING id`

	deleteAttendanceQuery = `DELETE FROM public.ponto WHERE id = $1`
)

// errNothingDeleted forces a rollback when DELETE matched no row.
var errNothingDeleted = errors.New("no rows deleted")

type PostgresAttendanceRepo struct {
	conn *pgx.Conn
}

func NewPostgresAttendanceRepo(conn *pgx.Conn) *PostgresAttendanceRepo {
	return &PostgresAttendanceRepo{conn: conn}
}

func (r *PostgresAttendanceRepo) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	rows, err := r.conn.Query(ctx, listAttendanceQuery)
	if err != nil {
		return nil, domain.QueryError("list", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AttendanceRecord, error) {
		var rec domain.AttendanceRecord
		err := row.Scan(&rec.ID, &rec.ClockIn, &rec.ClockOut, &rec.WorkDate, &rec.OvertimeMinutes)
		return rec, err
	})
	if err != nil {
		return nil, domain.QueryError("list", err)
	}
	return records, nil
}

func (r *PostgresAttendanceRepo) Insert(ctx context.Context, rec domain.AttendanceRecord) (int64, error) {
	var id int64
	err := withTransaction(ctx, r.conn, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, insertAttendanceQuery,
			rec.ClockIn,
			rec.ClockOut,
			rec.WorkDate,
			rec.OvertimeMinutes,
		).Scan(&id)
	})
	if err != nil {
		return 0, domain.QueryError("insert", err)
	}
	return id, nil
}

func (r *PostgresAttendanceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	err := withTransaction(ctx, r.conn, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, deleteAttendanceQuery, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errNothingDeleted
		}
		return nil
	})
	if errors.Is(err, errNothingDeleted) {
		return false, nil
	}
	if err != nil {
		return false, domain.QueryError("delete", err)
	}
	return true, nil
}

func (r *PostgresAttendanceRepo) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}
