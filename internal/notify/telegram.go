package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"marina/internal/models"
)

// telegramClient abstracts the bot API so tests can inject a fake.
type telegramClient interface {
	Send(tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier pushes booking activity to the marina managers' chats.
type Notifier struct {
	tg       telegramClient
	managers []int64
	logger   *zerolog.Logger
}

// New connects to Telegram with the given token.
func New(token string, debug bool, managers []int64, logger *zerolog.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram connect: %w", err)
	}
	api.Debug = debug
	return newNotifier(api, managers, logger), nil
}

// NewWithClient allows injecting a mocked Telegram client for tests.
func NewWithClient(tg telegramClient, managers []int64, logger *zerolog.Logger) *Notifier {
	return newNotifier(tg, managers, logger)
}

func newNotifier(tg telegramClient, managers []int64, logger *zerolog.Logger) *Notifier {
	return &Notifier{tg: tg, managers: managers, logger: logger}
}

// ReservationCreated announces a new booking.
func (n *Notifier) ReservationCreated(res models.Reservation) {
	n.broadcast(fmt.Sprintf("New reservation: dock %s, %s to %s, guest %s",
		res.DockID, models.FormatDay(res.StartDate), models.FormatDay(res.EndDate), res.GuestName))
}

// ReservationCancelled announces a cancellation.
func (n *Notifier) ReservationCancelled(res models.Reservation) {
	n.broadcast(fmt.Sprintf("Reservation cancelled: dock %s, %s to %s, guest %s",
		res.DockID, models.FormatDay(res.StartDate), models.FormatDay(res.EndDate), res.GuestName))
}

// WaitlistEntryAdded announces a new waitlist signup.
func (n *Notifier) WaitlistEntryAdded(e models.WaitlistEntry) {
	n.broadcast(fmt.Sprintf("New waitlist entry (%s): %s", e.WaitlistType, e.Name))
}

func (n *Notifier) broadcast(text string) {
	if n == nil {
		return
	}
	for _, chatID := range n.managers {
		msg := tgbotapi.NewMessage(chatID, text)
		if _, err := n.tg.Send(msg); err != nil && n.logger != nil {
			n.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send notification")
		}
	}
}
