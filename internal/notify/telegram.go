package notify

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jobmonitor/internal/config"
	"jobmonitor/internal/domain"
)

// Alerter delivers instant notifications for urgent postings.
type Alerter interface {
	SendUrgent(p domain.ScoredPosting) error
}

type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramAlerter(cfg config.Telegram) (*TelegramAlerter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &TelegramAlerter{bot: bot, chatID: cfg.ChatID}, nil
}

func (t *TelegramAlerter) SendUrgent(p domain.ScoredPosting) error {
	emoji := "🚨"
	if p.Score >= 90 {
		emoji = "🔥"
	}

	text := fmt.Sprintf(
		"%s <b>URGENT JOB MATCH</b> %s\n"+
			"Score: %d/100\n\n"+
			"🏢 <b>%s</b>\n"+
			"📋 <b>%s</b>\n\n"+
			"🔗 <a href=\"%s\">Apply Now</a>\n\n"+
			"⏰ %s\n"+
			"💡 Tip: Apply within 2 hours for best chance!",
		emoji, emoji,
		p.Score,
		p.Company,
		p.Title,
		p.URL,
		time.Now().Format("3:04 PM MST"),
	)

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML"
	_, err := t.bot.Send(msg)
	return err
}
