package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/onRAM-ai/gcg-portal/internal/domain"
)

// TelegramDeliverer pushes dispatched notifications to workers who linked a
// telegram chat. An empty token degrades to log-only delivery, which keeps
// local development working without a bot.
type TelegramDeliverer struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramDeliverer(token string, logger logger.Logger) (*TelegramDeliverer, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, deliveries will only be logged")
		return &TelegramDeliverer{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramDeliverer{bot: bot, logger: logger}, nil
}

// Deliver sends one notification to the user's chat. Users without a chat id
// simply keep the in-app row; that is not an error.
func (d *TelegramDeliverer) Deliver(ctx context.Context, user *domain.User, n *domain.Notification) error {
	if d.bot == nil {
		d.logger.Debug("delivery skipped (bot disabled)",
			logger.String("notification_id", n.ID),
			logger.String("user_id", n.UserID),
		)
		return nil
	}

	if user.TelegramChatID == nil {
		d.logger.Debug("delivery skipped (no chat_id)",
			logger.String("notification_id", n.ID),
			logger.String("user_id", n.UserID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	text := fmt.Sprintf("*%s*\n\n%s", n.Title, n.Message)
	msg := tgbotapi.NewMessage(*user.TelegramChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := d.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
