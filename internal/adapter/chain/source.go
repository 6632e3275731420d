package chain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"
	"reward-indexer/pkg/apperror"

	"github.com/rs/zerolog"
)

var errStopped = errors.New("subscription stopped")

// NewLogSource picks the transport from the RPC URL scheme: ws/wss use a
// push subscription, http/https poll a server-side filter.
func NewLogSource(rpcURL string, cfg Config, listener ports.StateListener, log zerolog.Logger) (ports.LogSource, error) {
	u, err := url.Parse(rpcURL)
	if err != nil {
		return nil, apperror.WrapConfig("parsing chain.rpc_url", err)
	}

	switch u.Scheme {
	case "ws", "wss":
		return NewWSClient(rpcURL, cfg, listener, log), nil
	case "http", "https":
		return NewHTTPPoller(rpcURL, cfg, listener, log), nil
	default:
		return nil, apperror.ErrConfig(fmt.Sprintf("unsupported rpc scheme %q", u.Scheme))
	}
}

// subscription implements ethereum.Subscription for both sources. The
// worker goroutine owns done; Unsubscribe stops it and closes the error
// channel once it has exited.
type subscription struct {
	ctx    context.Context
	cancel context.CancelFunc
	errCh  chan error
	done   chan struct{}
	once   sync.Once
	onStop func()
}

func newSubscription(parent context.Context) *subscription {
	ctx, cancel := context.WithCancel(parent)
	return &subscription{
		ctx:    ctx,
		cancel: cancel,
		errCh:  make(chan error, 1),
		done:   make(chan struct{}),
	}
}

func (s *subscription) Err() <-chan error {
	return s.errCh
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		if s.onStop != nil {
			s.onStop()
		}
		<-s.done
		close(s.errCh)
	})
}

// fail delivers a terminal error. Only the first one is kept.
func (s *subscription) fail(err error) {
	select {
	case s.errCh <- err:
	default:
	}
}

// sleep waits d or until the subscription stops.
func (s *subscription) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-s.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// reconnector applies the retry policy shared by both sources and reports
// state transitions.
type reconnector struct {
	cfg      Config
	listener ports.StateListener
	log      zerolog.Logger
}

func (r *reconnector) notify(state domain.SubscriptionState) {
	if r.listener != nil {
		r.listener.SubscriptionStateChanged(state)
	}
}

// retry calls attempt with exponential backoff until it succeeds. It gives
// up on a fatal RPC error or after MaxReconnectAttempts consecutive
// failures, returning a subscription AppError. It returns errStopped when
// the subscription is cancelled.
func (r *reconnector) retry(s *subscription, cause error, attempt func() error) error {
	r.notify(domain.SubscriptionReconnecting)
	bo := newBackoff(r.cfg.ReconnectDelay, r.cfg.MaxReconnectDelay)
	lastErr := cause

	for n := 1; ; n++ {
		if r.cfg.MaxReconnectAttempts > 0 && n > r.cfg.MaxReconnectAttempts {
			r.notify(domain.SubscriptionFailed)
			return apperror.ErrSubscription(
				fmt.Sprintf("giving up after %d reconnect attempts", r.cfg.MaxReconnectAttempts), lastErr)
		}

		delay := bo.Next()
		r.log.Warn().Err(lastErr).Int("attempt", n).Dur("delay", delay).Msg("Reconnecting log subscription")
		if !s.sleep(delay) {
			return errStopped
		}

		err := attempt()
		if err == nil {
			r.notify(domain.SubscriptionSubscribed)
			r.log.Info().Int("attempt", n).Msg("Log subscription re-established")
			return nil
		}
		if s.ctx.Err() != nil {
			return errStopped
		}
		if isFatalRPC(err) {
			r.notify(domain.SubscriptionFailed)
			return apperror.ErrSubscription("provider rejected log subscription", err)
		}
		lastErr = err
	}
}
