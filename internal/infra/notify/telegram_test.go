package notify

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/concretrack/internal/domain/materials"
	"github.com/Spok95/concretrack/internal/infra/logger"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

type recorder struct {
	texts []string
	err   error
}

func (r *recorder) Notify(_ context.Context, text string) error {
	r.texts = append(r.texts, text)
	return r.err
}

func TestTelegramSendsToAdminChat(t *testing.T) {
	s := &fakeSender{}
	tg := &Telegram{api: s, chatID: 42}

	require.NoError(t, tg.Notify(context.Background(), "hola"))
	require.Len(t, s.sent, 1)
	msg, ok := s.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "hola", msg.Text)

	s.err = errors.New("boom")
	assert.Error(t, tg.Notify(context.Background(), "x"))
}

func TestTelegramHonoursCancelledContext(t *testing.T) {
	s := &fakeSender{}
	tg := &Telegram{api: s, chatID: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, tg.Notify(ctx, "x"), context.Canceled)
	assert.Empty(t, s.sent)
}

func TestStockAlerterFiltersByBand(t *testing.T) {
	r := &recorder{}
	sent := 0
	a := NewStockAlerter(r, logger.Discard(), []string{"critical", "low", "bogus"}, func() { sent++ })

	a.Check(context.Background(), materials.Material{Name: "ARENA", Status: materials.StatusOptimal, CurrentStock: 900})
	assert.Empty(t, r.texts)

	a.CheckBatch(context.Background(), []materials.Material{
		{Name: "GRAVA", Status: materials.StatusCritical, CurrentStock: 0, Unit: materials.UnitM3},
		{Name: "AGUA", Status: materials.StatusHigh, CurrentStock: 990},
		{Name: "ADT2", Status: materials.StatusLow, CurrentStock: 200, MaxStock: 800, Unit: materials.UnitKg},
	})
	require.Len(t, r.texts, 1)
	assert.Contains(t, r.texts[0], "GRAVA: agotado")
	assert.Contains(t, r.texts[0], "ADT2: 200.0 kg")
	assert.NotContains(t, r.texts[0], "AGUA")
	assert.Equal(t, 1, sent)
}

func TestStockAlerterFailureDoesNotCount(t *testing.T) {
	r := &recorder{err: errors.New("down")}
	sent := 0
	a := NewStockAlerter(r, logger.Discard(), []string{"critical"}, func() { sent++ })

	a.Check(context.Background(), materials.Material{Name: "CMTO", Status: materials.StatusCritical, CurrentStock: 10})
	assert.Len(t, r.texts, 1)
	assert.Zero(t, sent)
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Notify(context.Background(), "x"))
}
