package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker"

	"partyplanner/internal/domain"
)

// errRecipientRejected marks a provider refusal of one message, such as an invalid
// address. It says nothing about provider health.
var errRecipientRejected = errors.New("recipient rejected")

type breakerMailer struct {
	name string
	next domain.Mailer
	cb   *gobreaker.CircuitBreaker
}

// withBreaker wraps next in a circuit breaker that opens after five consecutive
// failed sends. Cancelled sends and per-recipient rejections do not count as failures.
func withBreaker(name string, next domain.Mailer) domain.Mailer {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, errRecipientRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[MAILER] circuit %s: %s -> %s", name, from.String(), to.String())
		},
	}
	return &breakerMailer{name: name, next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *breakerMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	id, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Send(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %s unavailable: %v", domain.ErrMailDelivery, b.name, err)
	}
	if err != nil {
		return "", err
	}
	return id.(string), nil
}
