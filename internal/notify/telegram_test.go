package notify

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marina/internal/models"
)

type fakeTelegram struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func TestReservationCreatedBroadcastsToAllManagers(t *testing.T) {
	tg := &fakeTelegram{}
	n := NewWithClient(tg, []int64{100, 200}, nil)

	n.ReservationCreated(models.Reservation{
		DockID:    "102",
		StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		GuestName: "Alice",
	})

	require.Len(t, tg.sent, 2)
	assert.Equal(t, int64(100), tg.sent[0].ChatID)
	assert.Equal(t, int64(200), tg.sent[1].ChatID)
	assert.Contains(t, tg.sent[0].Text, "dock 102")
	assert.Contains(t, tg.sent[0].Text, "2025-06-10 to 2025-06-12")
	assert.Contains(t, tg.sent[0].Text, "Alice")
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.ReservationCreated(models.Reservation{})
	n.ReservationCancelled(models.Reservation{})
	n.WaitlistEntryAdded(models.WaitlistEntry{})
}

func TestWaitlistEntryAdded(t *testing.T) {
	tg := &fakeTelegram{}
	n := NewWithClient(tg, []int64{100}, nil)

	n.WaitlistEntryAdded(models.WaitlistEntry{
		WaitlistType: models.WaitlistJetSkiDockage,
		Name:         "Dave",
	})

	require.Len(t, tg.sent, 1)
	assert.Contains(t, tg.sent[0].Text, "Jet Ski Dockage")
	assert.Contains(t, tg.sent[0].Text, "Dave")
}
