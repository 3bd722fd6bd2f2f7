package email

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyplanner/internal/domain"
)

type countingMailer struct {
	calls int
	err   error
}

func (c *countingMailer) Send(ctx context.Context, msg *domain.EmailMessage) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return "id-1", nil
}

func TestBreakerMailer(t *testing.T) {
	t.Run("passes through", func(t *testing.T) {
		next := &countingMailer{}
		id, err := withBreaker("test", next).Send(context.Background(), testMessage)
		require.NoError(t, err)
		assert.Equal(t, "id-1", id)
	})

	t.Run("opens after consecutive failures", func(t *testing.T) {
		next := &countingMailer{err: domain.ErrMailDelivery}
		m := withBreaker("test", next)
		for i := 0; i < 5; i++ {
			_, err := m.Send(context.Background(), testMessage)
			require.ErrorIs(t, err, domain.ErrMailDelivery)
		}
		_, err := m.Send(context.Background(), testMessage)
		require.ErrorIs(t, err, domain.ErrMailDelivery)
		assert.Contains(t, err.Error(), "test unavailable")
		assert.Equal(t, 5, next.calls, "open breaker must not call the provider")
	})

	t.Run("cancellation does not trip", func(t *testing.T) {
		next := &countingMailer{err: context.Canceled}
		m := withBreaker("test", next)
		for i := 0; i < 7; i++ {
			_, err := m.Send(context.Background(), testMessage)
			require.ErrorIs(t, err, context.Canceled)
		}
		assert.Equal(t, 7, next.calls)
	})
}

func TestBreakerMailer_SendGrid(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusAccepted)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		code := int(status.Load())
		if code == http.StatusBadRequest {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(`{"errors":[{"message":"Does not contain a valid address.","field":"personalizations.0.to.0.email"}]}`))
			return
		}
		w.Header().Set("X-Message-Id", "sg-ok")
		w.WriteHeader(code)
	}))
	defer srv.Close()

	newMailer := func(t *testing.T) domain.Mailer {
		sg, err := newSendGridMailer(SendGridConfig{APIKey: "SG.test", BaseURL: srv.URL}, "host@example.com", "")
		require.NoError(t, err)
		return withBreaker("mail-sendgrid", sg)
	}

	t.Run("cancelled sends stay closed", func(t *testing.T) {
		m := newMailer(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		for i := 0; i < 6; i++ {
			_, err := m.Send(ctx, testMessage)
			require.ErrorIs(t, err, context.Canceled)
		}
		id, err := m.Send(context.Background(), testMessage)
		require.NoError(t, err)
		assert.Equal(t, "sg-ok", id)
	})

	t.Run("rejected recipients stay closed", func(t *testing.T) {
		m := newMailer(t)
		status.Store(http.StatusBadRequest)
		for i := 0; i < 6; i++ {
			_, err := m.Send(context.Background(), testMessage)
			require.ErrorIs(t, err, domain.ErrMailDelivery)
			assert.NotContains(t, err.Error(), "unavailable")
		}
		status.Store(http.StatusAccepted)
		id, err := m.Send(context.Background(), testMessage)
		require.NoError(t, err)
		assert.Equal(t, "sg-ok", id)
	})

	t.Run("provider outage opens", func(t *testing.T) {
		m := newMailer(t)
		status.Store(http.StatusServiceUnavailable)
		defer status.Store(http.StatusAccepted)
		for i := 0; i < 5; i++ {
			_, err := m.Send(context.Background(), testMessage)
			require.ErrorIs(t, err, domain.ErrMailDelivery)
		}
		before := hits.Load()
		_, err := m.Send(context.Background(), testMessage)
		require.ErrorIs(t, err, domain.ErrMailDelivery)
		assert.Contains(t, err.Error(), "mail-sendgrid unavailable")
		assert.Equal(t, before, hits.Load())
	})
}
