package telegram

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"

	"ponto/internal/app/service"
	"ponto/internal/delivery/messages"
	"ponto/internal/delivery/telegram/flows"
	"ponto/internal/delivery/telegram/keyboards"
	"ponto/internal/delivery/telegram/middleware"
	"ponto/internal/delivery/telegram/router"
	"ponto/internal/domain"
	"ponto/pkg/calendar"
)

const (
	maxMessageLen = 4096
	storeTimeout  = 30 * time.Second
)

const insertUsage = "Uso: /insert <entrada> <saida> [data]\nEx.: /insert 08:00 18:00 2025-03-01"

type Handler struct {
	Bot        *telebot.Bot
	Attendance domain.AttendanceService
	Async      *service.AsyncService
	Calendar   *calendar.CalendarController
	Router     *router.CallbackRouter
	Log        zerolog.Logger
	OwnerID    int64
	Now        func() time.Time

	mu      sync.Mutex
	pending map[int64]pendingInsert // chatID -> times waiting for a date
}

type pendingInsert struct {
	ClockIn  string
	ClockOut string
}

func (h *Handler) Register() {
	h.Bot.Use(middleware.OwnerOnly(h.OwnerID, h.Log))

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/list", h.handleList)
	h.Bot.Handle(&keyboards.BtnList, h.handleList)
	h.Bot.Handle("/insert", h.handleInsert)
	h.Bot.Handle(&keyboards.BtnInsert, func(c telebot.Context) error {
		return c.Send(insertUsage)
	})
	h.Bot.Handle("/delete", h.handleDelete)

	h.Calendar.OnDate = h.completeInsert
	h.Router.CalDelegate = h.Calendar.HandleCallback
	flows.RegisterDelete(h.Router, h.Attendance, h.Async)
	h.Router.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	return c.Send("> Registre suas horas extras.", keyboards.MainMenu())
}

func (h *Handler) handleList(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	records, err := service.Run(ctx, h.Async, h.Attendance.List)
	if err != nil {
		return c.Send(messages.Failure(err))
	}
	if len(records) == 0 {
		return c.Send(messages.Empty)
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, messages.ListLine(r))
	}
	for _, msg := range messages.Chunk(lines, maxMessageLen) {
		if err := c.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

// handleInsert inserts right away when a date is given, otherwise asks for
// one with the calendar picker.
func (h *Handler) handleInsert(c telebot.Context) error {
	args := c.Args()
	switch len(args) {
	case 3:
		return h.insert(c, args[0], args[1], args[2])
	case 2:
		h.setPending(c.Chat().ID, pendingInsert{ClockIn: args[0], ClockOut: args[1]})
		return h.Calendar.ShowCalendar(c, h.now())
	default:
		return c.Send(insertUsage)
	}
}

func (h *Handler) completeInsert(date time.Time, c telebot.Context) error {
	p, ok := h.takePending(c.Chat().ID)
	if !ok {
		return middleware.EditOrSend(c, insertUsage, nil)
	}
	return h.insert(c, p.ClockIn, p.ClockOut, date.Format("2006-01-02"))
}

func (h *Handler) insert(c telebot.Context, clockIn, clockOut, workDate string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	rec, err := service.Run(ctx, h.Async, func(ctx context.Context) (domain.AttendanceRecord, error) {
		return h.Attendance.Insert(ctx, clockIn, clockOut, workDate)
	})
	if err != nil {
		return middleware.EditOrSend(c, messages.Failure(err), nil)
	}
	return middleware.EditOrSend(c, messages.Inserted(rec), nil)
}

func (h *Handler) handleDelete(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Uso: /delete <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send("> ID inválido: " + args[0])
	}
	title, markup := keyboards.BuildDeleteConfirm(id)
	return c.Send(title, markup)
}

func (h *Handler) setPending(chatID int64, p pendingInsert) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		h.pending = make(map[int64]pendingInsert)
	}
	h.pending[chatID] = p
}

func (h *Handler) takePending(chatID int64) (pendingInsert, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.pending[chatID]
	delete(h.pending, chatID)
	return p, ok
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
