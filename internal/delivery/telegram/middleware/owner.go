package middleware

import (
	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"
)

// OwnerOnly drops updates from anyone but ownerID.
func OwnerOnly(ownerID int64, log zerolog.Logger) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			sender := c.Sender()
			if sender == nil || sender.ID != ownerID {
				ev := log.Warn()
				if sender != nil {
					ev = ev.Int64("sender_id", sender.ID)
				}
				ev.Msg("ignoring update from unknown user")
				return nil
			}
			return next(c)
		}
	}
}
