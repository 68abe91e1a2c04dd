package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ponto/internal/domain"
)

func TestLines(t *testing.T) {
	rec := domain.AttendanceRecord{ID: 7, ClockIn: "08:00", ClockOut: "19:30", WorkDate: "2025-03-01", OvertimeMinutes: 150}

	assert.Equal(t, ".id: 7 | entrada: 08:00 | saida: 19:30 | data: 2025-03-01 | hora extra: 2h 30min", ListLine(rec))
	assert.Equal(t, ".Inserted -> Entrada: 08:00, Saída: 19:30, Data: 2025-03-01, Extra: 2h 30min.", Inserted(rec))
	assert.Equal(t, ".Ponto > 7 < deleted.", Deleted(7))
	assert.Equal(t, ".Nenhum registro encontrado com ID 999999.", NotFound(999999))
}

func TestFailure(t *testing.T) {
	conn := domain.ConnectionError("connect", errors.New("connection refused"))
	assert.Equal(t, "> Erro ao conectar ao banco de dados: connect: connection refused", Failure(conn))

	query := domain.QueryError("insert", errors.New("invalid input syntax for type time"))
	assert.Equal(t, "> An error occurred: insert: invalid input syntax for type time", Failure(query))
}

func TestChunk(t *testing.T) {
	assert.Nil(t, Chunk(nil, 10))
	assert.Equal(t, []string{"aaa\nbbb", "ccc"}, Chunk([]string{"aaa", "bbb", "ccc"}, 7))
	assert.Equal(t, []string{"aaaaaaaaaaaa", "b"}, Chunk([]string{"aaaaaaaaaaaa", "b"}, 5))
	assert.Equal(t, []string{"a\nb\nc"}, Chunk([]string{"a", "b", "c"}, 4096))
}
