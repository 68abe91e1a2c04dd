package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"ponto/internal/domain"
)

// Connector opens the SQLite file at Path for each operation.
type Connector struct {
	Path string
}

func NewConnector(path string) *Connector {
	return &Connector{Path: path}
}

func (c *Connector) Connect(ctx context.Context) (domain.AttendanceRepo, error) {
	db, err := sql.Open("sqlite3", c.Path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, domain.ConnectionError("open", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, domain.ConnectionError("ping", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, domain.QueryError("migrate", err)
	}
	return NewSqliteAttendanceRepo(db), nil
}
