package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobmag-scraper/internal/config"
	"go-jobmag-scraper/internal/scraper"
)

// TelegramReporter pushes scraped postings and the run summary to a chat.
// It is optional: main only constructs one when a token is configured.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendRecord(rec scraper.Record) error {
	contact := rec.ApplicationEmail
	if contact == "" {
		contact = rec.ApplicationURL
	}
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"📍 %s\n"+
			"💰 %s\n"+
			"⏰ %s\n"+
			"📬 %s",
		rec.PostTitle,
		rec.Company,
		rec.JobLocation,
		rec.JobSalary,
		rec.JobExpires,
		contact,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendSummary(count int, path string) error {
	return t.SendMessage(fmt.Sprintf("✅ Scraped <b>%d</b> jobs.\n📁 %s", count, path))
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Scraper Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
