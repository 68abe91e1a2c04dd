package middleware

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gopkg.in/telebot.v3"
)

type fakeContext struct {
	telebot.Context
	sender  *telebot.User
	editErr error
	edited  []string
	sent    []string
}

func (f *fakeContext) Sender() *telebot.User { return f.sender }

func (f *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.editErr != nil {
		return f.editErr
	}
	f.edited = append(f.edited, what.(string))
	return nil
}

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what.(string))
	return nil
}

func TestOwnerOnly(t *testing.T) {
	calls := 0
	h := OwnerOnly(42, zerolog.Nop())(func(c telebot.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, h(&fakeContext{sender: &telebot.User{ID: 42}}))
	assert.NoError(t, h(&fakeContext{sender: &telebot.User{ID: 7}}))
	assert.NoError(t, h(&fakeContext{}))
	assert.Equal(t, 1, calls)
}

func TestEditOrSend(t *testing.T) {
	c := &fakeContext{}
	assert.NoError(t, EditOrSend(c, "ok", nil))
	assert.Equal(t, []string{"ok"}, c.edited)
	assert.Empty(t, c.sent)

	c = &fakeContext{editErr: errors.New("message can't be edited")}
	assert.NoError(t, EditOrSend(c, "fallback", &telebot.ReplyMarkup{}))
	assert.Equal(t, []string{"fallback"}, c.sent)
}
