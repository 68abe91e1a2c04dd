package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// Callback keys. Every key starts with "cal_" so routers can delegate them.
const (
	KeyDay  = "cal_day"
	KeyPrev = "cal_prev"
	KeyNext = "cal_next"
)

var monthNames = map[time.Month]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// CalendarController handles an inline date picker. OnDate is called with
// the picked day (UTC midnight).
type CalendarController struct {
	OnDate func(time.Time, telebot.Context) error
}

// ShowCalendar sends (or edits into) the picker for the month containing now.
func (cc *CalendarController) ShowCalendar(c telebot.Context, now time.Time) error {
	return SendCalendar(c, now.Year(), int(now.Month()))
}

func SendCalendar(c telebot.Context, year, month int) error {
	title, markup := BuildCalendar(year, month)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// BuildCalendar lays out one month, seven days per row, with prev/next buttons.
func BuildCalendar(year, month int) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	week := telebot.Row{}
	for d := 1; d <= daysInMonth(year, month); d++ {
		week = append(week, markup.Data(strconv.Itoa(d), KeyDay, fmt.Sprintf("%d-%d-%d", d, month, year)))
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	prev := markup.Data("<", KeyPrev, fmt.Sprintf("%d-%d", month-1, year))
	next := markup.Data(">", KeyNext, fmt.Sprintf("%d-%d", month+1, year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)

	return fmt.Sprintf("Escolha a data: %s %d", monthNames[time.Month(month)], year), markup
}

// HandleCallback serves the cal_* callbacks produced by BuildCalendar.
func (cc *CalendarController) HandleCallback(c telebot.Context) error {
	key, payload, ok := strings.Cut(strings.TrimPrefix(c.Data(), "\f"), "|")
	if !ok {
		return nil
	}
	switch key {
	case KeyDay:
		date, err := ParseDay(payload)
		if err != nil || cc.OnDate == nil {
			return c.Send("Erro na data", &telebot.ReplyMarkup{})
		}
		return cc.OnDate(date, c)
	case KeyPrev, KeyNext:
		year, month, err := ParseMonth(payload)
		if err != nil {
			return c.Send("Erro no mês", &telebot.ReplyMarkup{})
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

// ParseDay parses a "day-month-year" payload.
func ParseDay(payload string) (time.Time, error) {
	parts := SplitDateData(payload)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("calendar: bad day payload %q", payload)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return time.Time{}, err
	}
	day, month, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("calendar: day out of range %q", payload)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseMonth parses a "month-year" payload, rolling month 0 and 13 into the
// neighbouring year.
func ParseMonth(payload string) (year, month int, err error) {
	parts := SplitDateData(payload)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("calendar: bad month payload %q", payload)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return 0, 0, err
	}
	month, year = nums[0], nums[1]
	switch {
	case month < 1:
		month, year = 12, year-1
	case month > 12:
		month, year = 1, year+1
	}
	return year, month, nil
}

func SplitDateData(data string) []string {
	return strings.Split(data, "-")
}

func atoiAll(parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("calendar: %w", err)
		}
		nums[i] = n
	}
	return nums, nil
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
