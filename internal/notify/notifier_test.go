package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/base"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/notify"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []*gomail.Message
}

func (sender *recordingSender) DialAndSend(m ...*gomail.Message) error {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	sender.messages = append(sender.messages, m...)
	return nil
}

func (sender *recordingSender) count() int {
	sender.mu.Lock()
	defer sender.mu.Unlock()
	return len(sender.messages)
}

func emailConfig(recipients ...string) *c.EmailConfig {
	return &c.EmailConfig{Enabled: true, Username: "surety@example.com", Recipients: recipients}
}

func TestNotifyRendersObservation(t *testing.T) {
	sender := &recordingSender{}
	notifier := notify.NewEmailNotifier(base.NewLogger(), emailConfig("ops@example.com"), sender)

	observation := NewFlightStatusFinalized(3, NewFlightKey("a1", "SA101", 1700000000), StatusLateWeather, 3)
	require.NoError(t, notifier.Notify(observation))
	require.Equal(t, 1, sender.count())

	message := sender.messages[0]
	assert.Equal(t, []string{"Flight status finalized"}, message.GetHeader("Subject"))
	assert.Equal(t, []string{"ops@example.com"}, message.GetHeader("To"))

	assert.ErrorIs(t, notifier.Notify(&Observation{Kind: OracleReported}), notify.ErrRenderingTemplate)
}

func TestNotifyWithoutRecipients(t *testing.T) {
	sender := &recordingSender{}
	notifier := notify.NewEmailNotifier(base.NewLogger(), emailConfig(), sender)
	require.NoError(t, notifier.Notify(NewInsurancePaid("p1", NewFlightKey("a1", "SA101", 1), Units(1))))
	assert.Zero(t, sender.count())
}

func TestNotifierFollowsBus(t *testing.T) {
	sender := &recordingSender{}
	notifier := notify.NewEmailNotifier(base.NewLogger(), emailConfig("ops@example.com"), sender)
	bus := surety.NewEventBus(base.NewLogger())
	defer bus.Close()
	notifier.Start(bus)

	bus.Publish(NewAirlineRegistered("a1", "a2", 0))
	bus.Publish(NewVoteRecorded("a1", "a3", 1))
	assert.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, notifier.Invoke(ctx))
	assert.Equal(t, 1, sender.count())
}
