// Package notify delivers stock alerts to the admin Telegram chat.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/concretrack/internal/domain/materials"
)

type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Nop drops every message. Used when no bot token is configured.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Telegram struct {
	api    sender
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (t *Telegram) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		return fmt.Errorf("send to %d: %w", t.chatID, err)
	}
	return nil
}

// StockAlerter decides which stock changes are worth a message.
type StockAlerter struct {
	n       Notifier
	log     *slog.Logger
	alertOn map[materials.Status]bool
	onSent  func()
}

func NewStockAlerter(n Notifier, log *slog.Logger, alertOn []string, onSent func()) *StockAlerter {
	on := make(map[materials.Status]bool, len(alertOn))
	for _, s := range alertOn {
		if st := materials.Status(s); st.Valid() {
			on[st] = true
		}
	}
	if onSent == nil {
		onSent = func() {}
	}
	return &StockAlerter{n: n, log: log, alertOn: on, onSent: onSent}
}

func (a *StockAlerter) line(m materials.Material) (string, bool) {
	if !a.alertOn[m.Status] {
		return "", false
	}
	if m.CurrentStock <= 0 {
		return fmt.Sprintf("— %s: agotado", m.Name), true
	}
	return fmt.Sprintf("— %s: %.1f %s (%s, máx %.0f)", m.Name, m.CurrentStock, m.Unit, m.Status, m.MaxStock), true
}

// Check sends one alert if m sits in an alert band. Failures are logged, not returned.
func (a *StockAlerter) Check(ctx context.Context, m materials.Material) {
	a.CheckBatch(ctx, []materials.Material{m})
}

// CheckBatch groups every alerting material into a single message.
func (a *StockAlerter) CheckBatch(ctx context.Context, ms []materials.Material) {
	var lines []string
	for _, m := range ms {
		if l, ok := a.line(m); ok {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return
	}
	text := "⚠️ Inventario:\n" + strings.Join(lines, "\n")
	if err := a.n.Notify(ctx, text); err != nil {
		a.log.Error("stock alert failed", "err", err, "materials", len(lines))
		return
	}
	a.onSent()
}
