package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"ponto/internal/domain"
)

// Connector dials a single PostgreSQL connection per operation.
type Connector struct {
	DSN string
}

func NewConnector(dsn string) *Connector {
	return &Connector{DSN: dsn}
}

func (c *Connector) Connect(ctx context.Context) (domain.AttendanceRepo, error) {
	cfg, err := pgx.ParseConfig(c.DSN)
	if err != nil {
		return nil, domain.ConnectionError("parse dsn", err)
	}
	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, domain.ConnectionError("connect", err)
	}
	return NewPostgresAttendanceRepo(conn), nil
}
