package sqlite

import (
	"context"
	"database/sql"
)

// AUTOINCREMENT keeps ids of deleted rows from being handed out again.
// dia must already be a valid YYYY-MM-DD date so text order is date order.
const createPontoTable = `
CREATE TABLE IF NOT EXISTS ponto (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    hr_begin TEXT NOT NULL,
    hr_end TEXT NOT NULL,
    dia TEXT NOT NULL CHECK (date(dia) IS NOT NULL AND date(dia) = dia),
    extra INTEGER NOT NULL DEFAULT 0
);
`

const createPontoDiaIndex = `CREATE INDEX IF NOT EXISTS idx_ponto_dia ON ponto (dia);`

func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createPontoTable); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, createPontoDiaIndex); err != nil {
		return err
	}
	return nil
}
