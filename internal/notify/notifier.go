// Package notify mails operators about registrations, final flight statuses and payouts
package notify

import (
	"bytes"
	"context"
	"errors"
	"html/template"

	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"gopkg.in/gomail.v2"
)

// Sender is satisfied by *gomail.Dialer
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

var ErrRenderingTemplate = errors.New("error rendering template")

var templates = map[ObservationKind]*template.Template{
	AirlineRegistered: template.Must(template.New(string(AirlineRegistered)).Parse(
		`<p>Airline <b>{{.Airline}}</b> joined the pool with {{.Votes}} vote(s), sponsored by {{.Actor}}.</p>`)),
	FlightStatusFinalized: template.Must(template.New(string(FlightStatusFinalized)).Parse(
		`<p>Flight <b>{{.Designator}}</b> of {{.Airline}} departing {{.DepartureTime}} finalized as <b>{{.Status}}</b> ` +
			`on index {{.Index}} with {{.Votes}} matching report(s).</p>`)),
	InsurancePaid: template.Must(template.New(string(InsurancePaid)).Parse(
		`<p>Passenger <b>{{.Actor}}</b> was paid {{.Amount}} for flight {{.Designator}} of {{.Airline}}.</p>`)),
}

var subjects = map[ObservationKind]string{
	AirlineRegistered:     "Airline registered",
	FlightStatusFinalized: "Flight status finalized",
	InsurancePaid:         "Insurance paid",
}

type EmailNotifier struct {
	logger       log.LoggerInterface
	config       *c.EmailConfig
	sender       Sender
	subscription *surety.Subscription
	done         chan struct{}
}

func NewEmailNotifier(logger log.LoggerInterface, config *c.EmailConfig, sender Sender) *EmailNotifier {
	return &EmailNotifier{
		logger: logger,
		config: config,
		sender: sender,
		done:   make(chan struct{}),
	}
}

func (notifier *EmailNotifier) render(observation *Observation) (string, error) {
	tmpl, ok := templates[observation.Kind]
	if !ok {
		return "", ErrRenderingTemplate
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, observation); err != nil {
		return "", errors.Join(ErrRenderingTemplate, err)
	}
	return buf.String(), nil
}

// Notify mails one observation to every configured recipient
func (notifier *EmailNotifier) Notify(observation *Observation) error {
	if len(notifier.config.Recipients) == 0 {
		return nil
	}
	message, err := notifier.render(observation)
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", notifier.config.Username)
	m.SetHeader("To", notifier.config.Recipients...)
	m.SetHeader("Subject", subjects[observation.Kind])
	m.SetBody("text/html", message)
	return notifier.sender.DialAndSend(m)
}

// Start mails every matching observation published on bus until Invoke is called
func (notifier *EmailNotifier) Start(bus *surety.EventBus) {
	notifier.subscription = bus.Subscribe(AirlineRegistered, FlightStatusFinalized, InsurancePaid)
	go func() {
		defer close(notifier.done)
		for observation := range notifier.subscription.C() {
			if err := notifier.Notify(observation); err != nil {
				notifier.logger.WarnF("Error sending %s notification: %v", observation.Kind, err)
			}
		}
	}()
}

func (notifier *EmailNotifier) Invoke(ctx context.Context) error {
	if notifier.subscription == nil {
		return nil
	}
	notifier.subscription.Close()
	select {
	case <-notifier.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
