package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponto/internal/domain"
)

type fakeService struct {
	records []domain.AttendanceRecord
	err     error
	nextID  int64

	insertArgs []string
	deletedIDs []int64
}

func (f *fakeService) List(ctx context.Context) ([]domain.AttendanceRecord, error) {
	return f.records, f.err
}

func (f *fakeService) Insert(ctx context.Context, clockIn, clockOut, workDate string) (domain.AttendanceRecord, error) {
	f.insertArgs = []string{clockIn, clockOut, workDate}
	if f.err != nil {
		return domain.AttendanceRecord{}, f.err
	}
	f.nextID++
	rec := domain.AttendanceRecord{ID: f.nextID, ClockIn: clockIn, ClockOut: clockOut, WorkDate: workDate, OvertimeMinutes: 60}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeService) Delete(ctx context.Context, id int64) (bool, error) {
	f.deletedIDs = append(f.deletedIDs, id)
	if f.err != nil {
		return false, f.err
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func run(t *testing.T, app *App, args ...string) (int, string, string) {
	t.Helper()
	app.Log = zerolog.Nop()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), app, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestList(t *testing.T) {
	svc := &fakeService{records: []domain.AttendanceRecord{
		{ID: 1, ClockIn: "08:00", ClockOut: "18:00", WorkDate: "2025-03-01", OvertimeMinutes: 60},
		{ID: 2, ClockIn: "08:00", ClockOut: "19:30", WorkDate: "2025-03-02", OvertimeMinutes: 150},
	}}

	code, out, _ := run(t, &App{Service: svc}, "list")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t,
		".id: 1 | entrada: 08:00 | saida: 18:00 | data: 2025-03-01 | hora extra: 1h 0min\n"+
			".id: 2 | entrada: 08:00 | saida: 19:30 | data: 2025-03-02 | hora extra: 2h 30min\n",
		out)
}

func TestList_Empty(t *testing.T) {
	code, out, _ := run(t, &App{Service: &fakeService{}}, "list")
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, out)
}

func TestInsert(t *testing.T) {
	svc := &fakeService{}
	code, out, _ := run(t, &App{Service: svc}, "insert", "08:00", "18:00", "2025-03-01")

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, []string{"08:00", "18:00", "2025-03-01"}, svc.insertArgs)
	assert.Equal(t, ".Inserted -> Entrada: 08:00, Saída: 18:00, Data: 2025-03-01, Extra: 1h 0min.\n", out)
}

func TestInsert_WrongArgCountIsUsageError(t *testing.T) {
	svc := &fakeService{}
	code, out, errOut := run(t, &App{Service: svc}, "insert", "08:00", "18:00")

	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "accepts 3 arg(s)")
	assert.Nil(t, svc.insertArgs)
}

func TestDelete(t *testing.T) {
	svc := &fakeService{records: []domain.AttendanceRecord{{ID: 5}}}

	code, out, _ := run(t, &App{Service: svc}, "delete", "5")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ".Ponto > 5 < deleted.\n", out)

	code, out, _ = run(t, &App{Service: svc}, "delete", "999999")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, ".Nenhum registro encontrado com ID 999999.\n", out)
}

func TestDelete_NonIntegerIDIsUsageError(t *testing.T) {
	svc := &fakeService{}
	code, out, errOut := run(t, &App{Service: svc}, "delete", "abc")

	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "not a valid integer")
	assert.Empty(t, svc.deletedIDs)
}

func TestUsageErrors_KeepStdoutClean(t *testing.T) {
	tests := [][]string{
		{"insert"},
		{"delete"},
		{"list", "--no-such-flag"},
		{"frobnicate"},
	}
	for _, args := range tests {
		code, out, errOut := run(t, &App{Service: &fakeService{}}, args...)
		assert.Equal(t, ExitUsage, code, args)
		assert.Empty(t, out, args)
		assert.NotContains(t, errOut, "Usage:", args)
		assert.Contains(t, errOut, "Error:", args)
	}
}

func TestFailures_LenientExit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		args []string
		want string
	}{
		{"list connection", domain.ConnectionError("connect", errors.New("refused")), []string{"list"}, "> Erro ao conectar ao banco de dados: connect: refused\n"},
		{"insert query", domain.QueryError("insert", errors.New("bad time")), []string{"insert", "25:99", "18:00", "2025-03-01"}, "> An error occurred: insert: bad time\n"},
		{"delete query", domain.QueryError("delete", errors.New("locked")), []string{"delete", "1"}, "> An error occurred: delete: locked\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, _ := run(t, &App{Service: &fakeService{err: tc.err}}, tc.args...)
			assert.Equal(t, ExitOK, code)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestFailures_StrictExit(t *testing.T) {
	conn := domain.ConnectionError("connect", errors.New("refused"))
	query := domain.QueryError("list", errors.New("no table"))

	code, _, _ := run(t, &App{Service: &fakeService{err: conn}}, "--strict-exit", "list")
	assert.Equal(t, ExitConnection, code)

	code, _, _ = run(t, &App{Service: &fakeService{err: query}, StrictExit: true}, "list")
	assert.Equal(t, ExitQuery, code)

	code, _, _ = run(t, &App{Service: &fakeService{err: errors.New("odd")}, StrictExit: true}, "list")
	assert.Equal(t, ExitFailure, code)

	code, _, _ = run(t, &App{Service: &fakeService{}, StrictExit: true}, "list")
	assert.Equal(t, ExitOK, code)
}

func TestBot(t *testing.T) {
	called := false
	app := &App{Service: &fakeService{}, RunBot: func(ctx context.Context) error {
		called = true
		require.NotNil(t, ctx)
		return nil
	}}
	code, _, _ := run(t, app, "bot")
	assert.True(t, called)
	assert.Equal(t, ExitOK, code)

	app = &App{Service: &fakeService{}, RunBot: func(ctx context.Context) error {
		return errors.New("TELEGRAM_TOKEN não definido no ambiente")
	}}
	code, out, _ := run(t, app, "bot")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, out, "> An error occurred: TELEGRAM_TOKEN")
}
