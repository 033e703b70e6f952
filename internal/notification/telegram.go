package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking lifecycle events to the operations
// chat. With no token configured it degrades to logging only.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*New booking*\nBooking: %s\nSeats/rooms: %d\nTotal: %.2f\nAwaiting payment (ref %s).",
		b.ID, b.Quantity, b.TotalPrice, b.GatewayReference,
	))
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*Booking confirmed*\nBooking: %s\nTotal: %.2f\nReference: %s",
		b.ID, b.TotalPrice, b.GatewayReference,
	))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*Booking cancelled*\nBooking: %s\nInventory restored for %d unit(s).",
		b.ID, b.Quantity,
	))
}

func (n *TelegramNotifier) NotifyPaymentFailed(ctx context.Context, b *domain.Booking) {
	n.send(ctx, fmt.Sprintf(
		"*Payment failed*\nBooking: %s\nReference: %s\nThe reservation keeps holding its units.",
		b.ID, b.GatewayReference,
	))
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
