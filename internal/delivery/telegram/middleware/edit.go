package middleware

import "gopkg.in/telebot.v3"

// EditOrSend edits the message behind a callback, falling back to a new
// message when there is nothing to edit or the edit fails.
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		if err := c.Edit(text, markup); err != nil {
			return c.Send(text, markup)
		}
		return nil
	}
	if err := c.Edit(text); err != nil {
		return c.Send(text)
	}
	return nil
}
