// Package mail delivers order confirmation messages. Delivery is
// best-effort: callers run it detached and a failure can only ever produce a
// log line and a metric, never a failed order.
package mail

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"

	"github.com/akbusiness/food-store-backend/internal/config"
	"github.com/akbusiness/food-store-backend/internal/metrics"
	"github.com/akbusiness/food-store-backend/internal/order"
)

// New returns an SMTP-backed notifier when SMTP is configured, otherwise a
// notifier that logs the mail contents instead of sending.
func New(cfg config.SMTPConfig) order.Notifier {
	if cfg.Host == "" || cfg.NotifyTo == "" {
		return &LogMailer{}
	}
	return NewSMTPMailer(cfg)
}

// LogMailer writes the confirmation to the log. Used when no SMTP host is
// configured so local setups still show what would have been sent.
type LogMailer struct{}

func (m *LogMailer) OrderCreated(ord order.OrderWithItems) error {
	log.WithFields(log.Fields{
		"order_id":     ord.ID,
		"customer":     ord.CustomerName,
		"total_amount": ord.TotalAmount,
	}).Info("order confirmation (mail not configured)\n" + orderBody(ord))
	return nil
}

// SMTPMailer sends the confirmation over SMTP. A circuit breaker stops a dead
// mail host from being dialed on every checkout.
type SMTPMailer struct {
	cfg     config.SMTPConfig
	dialer  *gomail.Dialer
	breaker *gobreaker.CircuitBreaker
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "order-mail",
			Timeout: 60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.WithFields(log.Fields{"circuit": name, "from": from.String(), "to": to.String()}).Warn("mail circuit state change")
			},
		}),
	}
}

func (m *SMTPMailer) OrderCreated(ord order.OrderWithItems) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Username)
	msg.SetHeader("To", m.cfg.NotifyTo)
	msg.SetHeader("Subject", fmt.Sprintf("New Order #%d", ord.ID))
	msg.SetBody("text/plain", orderBody(ord))

	_, err := m.breaker.Execute(func() (any, error) {
		return nil, m.dialer.DialAndSend(msg)
	})
	if err != nil {
		metrics.MailFailuresTotal.Inc()
		return err
	}
	return nil
}

func orderBody(ord order.OrderWithItems) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s (%s)\n", ord.CustomerName, ord.CustomerPhone)
	fmt.Fprintf(&b, "Address: %s\n", ord.CustomerAddress)
	if ord.CustomerEmail != nil {
		fmt.Fprintf(&b, "Email: %s\n", *ord.CustomerEmail)
	}
	b.WriteString("Items:\n")
	for _, item := range ord.Items {
		fmt.Fprintf(&b, "- Product ID %d x %d @ %d\n", item.ProductID, item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "Total: %d\n", ord.TotalAmount)
	return b.String()
}
