package keyboards

import (
	"strconv"

	"gopkg.in/telebot.v3"
)

const (
	DeleteConfirmKey = "del_yes"
	DeleteCancelKey  = "del_no"
)

var (
	BtnList   = telebot.Btn{Text: "📋 Listar"}
	BtnInsert = telebot.Btn{Text: "➕ Inserir"}
)

func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(BtnList),
		markup.Row(BtnInsert),
	)
	return markup
}

// BuildDeleteConfirm asks before deleting record id.
func BuildDeleteConfirm(id int64) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	payload := strconv.FormatInt(id, 10)
	yes := markup.Data("Apagar", DeleteConfirmKey, payload)
	no := markup.Data("Cancelar", DeleteCancelKey, payload)
	markup.Inline(markup.Row(yes, no))
	return "Apagar o registro " + payload + "?", markup
}
