package domain

import "context"

// AttendanceRepo is a single acquired connection to the record store.
// Callers must Close it once done.
type AttendanceRepo interface {
	List(ctx context.Context) ([]AttendanceRecord, error)
	Insert(ctx context.Context, rec AttendanceRecord) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Close(ctx context.Context) error
}

// Connector hands out a fresh AttendanceRepo per operation.
type Connector interface {
	Connect(ctx context.Context) (AttendanceRepo, error)
}
