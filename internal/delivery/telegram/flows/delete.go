package flows

import (
	"context"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"ponto/internal/app/service"
	"ponto/internal/delivery/messages"
	"ponto/internal/delivery/telegram/keyboards"
	"ponto/internal/delivery/telegram/middleware"
	"ponto/internal/delivery/telegram/router"
	"ponto/internal/domain"
)

const storeTimeout = 30 * time.Second

// RegisterDelete wires the answers to the delete confirmation keyboard.
func RegisterDelete(r *router.CallbackRouter, attendance domain.AttendanceService, async *service.AsyncService) {
	r.Register(keyboards.DeleteConfirmKey, func(c telebot.Context, payload string) error {
		id, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return middleware.EditOrSend(c, "> ID inválido: "+payload, nil)
		}

		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		deleted, err := service.Run(ctx, async, func(ctx context.Context) (bool, error) {
			return attendance.Delete(ctx, id)
		})
		switch {
		case err != nil:
			return middleware.EditOrSend(c, messages.Failure(err), nil)
		case !deleted:
			return middleware.EditOrSend(c, messages.NotFound(id), nil)
		default:
			return middleware.EditOrSend(c, messages.Deleted(id), nil)
		}
	})

	r.Register(keyboards.DeleteCancelKey, func(c telebot.Context, payload string) error {
		return middleware.EditOrSend(c, ".Cancelado.", nil)
	})
}
