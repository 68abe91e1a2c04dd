package domain

import "context"

type AttendanceService interface {
	List(ctx context.Context) ([]AttendanceRecord, error)
	Insert(ctx context.Context, clockIn, clockOut, workDate string) (AttendanceRecord, error)
	// Delete reports false without error when no record has the given id.
	Delete(ctx context.Context, id int64) (bool, error)
}
