// Package messages holds the user-facing text shared by the CLI and the bot.
// Success lines start with "." and failures with ">".
package messages

import (
	"fmt"
	"strings"

	"ponto/internal/domain"
)

func ListLine(r domain.AttendanceRecord) string {
	return fmt.Sprintf(".id: %d | entrada: %s | saida: %s | data: %s | hora extra: %s",
		r.ID, r.ClockIn, r.ClockOut, r.WorkDate, r.OvertimeDisplay())
}

func Inserted(r domain.AttendanceRecord) string {
	return fmt.Sprintf(".Inserted -> Entrada: %s, Saída: %s, Data: %s, Extra: %s.",
		r.ClockIn, r.ClockOut, r.WorkDate, r.OvertimeDisplay())
}

func Deleted(id int64) string {
	return fmt.Sprintf(".Ponto > %d < deleted.", id)
}

func NotFound(id int64) string {
	return fmt.Sprintf(".Nenhum registro encontrado com ID %d.", id)
}

func Failure(err error) string {
	if domain.KindOf(err) == domain.ErrConnection {
		return fmt.Sprintf("> Erro ao conectar ao banco de dados: %v", err)
	}
	return fmt.Sprintf("> An error occurred: %v", err)
}

const Empty = ".Nenhum registro."

// Chunk joins lines with newlines into messages no longer than limit bytes.
// A single line longer than limit gets a message of its own.
func Chunk(lines []string, limit int) []string {
	var (
		out []string
		cur strings.Builder
	)
	for _, line := range lines {
		if cur.Len() > 0 && cur.Len()+1+len(line) > limit {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
