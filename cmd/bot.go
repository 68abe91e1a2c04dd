package main

import (
	"context"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"

	"ponto/config"
	"ponto/internal/app/service"
	"ponto/internal/delivery/telegram"
	"ponto/internal/delivery/telegram/router"
	"ponto/internal/domain"
	"ponto/pkg/calendar"
	"ponto/pkg/workerpool"
)

// runBot serves the Telegram front end until ctx is done. Store work goes
// through a single worker so commands run one at a time.
func runBot(ctx context.Context, cfg *config.Config, attendance domain.AttendanceService, log zerolog.Logger) error {
	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	pool := workerpool.NewWorkerPool(1, 32)
	defer pool.Close()

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &telebot.LongPoller{Timeout: 10},
		OnError: func(err error, c telebot.Context) {
			log.Error().Err(err).Msg("telegram handler")
		},
	})
	if err != nil {
		return err
	}

	handler := &telegram.Handler{
		Bot:        bot,
		Attendance: attendance,
		Async:      service.NewAsyncService(pool),
		Calendar:   &calendar.CalendarController{},
		Router:     router.New(log),
		Log:        log,
		OwnerID:    cfg.Telegram.OwnerID,
	}
	handler.Register()

	go func() {
		<-ctx.Done()
		bot.Stop()
	}()

	log.Info().Str("bot", bot.Me.Username).Msg("bot started")
	bot.Start()
	log.Info().Msg("bot stopped")
	return nil
}
