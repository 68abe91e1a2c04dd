package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"ponto/internal/domain"
)

type AttendanceServiceImpl struct {
	Connector domain.Connector
	Log       zerolog.Logger
}

func NewAttendanceService(connector domain.Connector, log zerolog.Logger) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{Connector: connector, Log: log}
}

func (s *AttendanceServiceImpl) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	repo, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, repo)

	records, err := repo.List(ctx)
	if err != nil {
		return nil, asQueryError("list", err)
	}
	return records, nil
}

// Insert stores a new record. Unparsable times do not fail the insert: the
// overtime falls back to zero and the values are handed to the store as given.
// Dates are padded to YYYY-MM-DD so they sort chronologically.
func (s *AttendanceServiceImpl) Insert(ctx context.Context, clockIn, clockOut, workDate string) (domain.AttendanceRecord, error) {
	repo, err := s.connect(ctx)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	defer s.release(ctx, repo)

	minutes, err := CalculateOvertime(clockIn, clockOut)
	if err != nil {
		// TODO: product review on whether bad times should reject the insert instead.
		s.Log.Warn().Err(err).
			Str("clock_in", clockIn).
			Str("clock_out", clockOut).
			Msg("erro ao calcular horas extras, usando 0")
		minutes = 0
	}

	rec := domain.AttendanceRecord{
		ClockIn:         canonicalClock(clockIn),
		ClockOut:        canonicalClock(clockOut),
		WorkDate:        canonicalDate(workDate),
		OvertimeMinutes: minutes,
	}
	id, err := repo.Insert(ctx, rec)
	if err != nil {
		return domain.AttendanceRecord{}, asQueryError("insert", err)
	}
	rec.ID = id
	s.Log.Debug().Int64("id", id).Int("overtime_minutes", minutes).Msg("record inserted")
	return rec, nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	repo, err := s.connect(ctx)
	if err != nil {
		return false, err
	}
	defer s.release(ctx, repo)

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		return false, asQueryError("delete", err)
	}
	return deleted, nil
}

func (s *AttendanceServiceImpl) connect(ctx context.Context) (domain.AttendanceRepo, error) {
	repo, err := s.Connector.Connect(ctx)
	if err != nil {
		var storeErr *domain.StoreError
		if errors.As(err, &storeErr) {
			return nil, err
		}
		return nil, domain.ConnectionError("connect", err)
	}
	return repo, nil
}

func (s *AttendanceServiceImpl) release(ctx context.Context, repo domain.AttendanceRepo) {
	if err := repo.Close(ctx); err != nil {
		s.Log.Warn().Err(err).Msg("closing connection")
	}
}

func asQueryError(op string, err error) error {
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	return domain.QueryError(op, err)
}
