package chain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
)

// HTTPPoller streams logs by installing a server-side filter with
// eth_newFilter and polling eth_getFilterChanges. Each non-empty poll is one
// batch. A lost filter or failed poll re-installs the filter.
type HTTPPoller struct {
	endpoint string
	cfg      Config
	httpc    *http.Client
	rc       *reconnector
	log      zerolog.Logger
}

// NewHTTPPoller creates an HTTP polling log source.
func NewHTTPPoller(endpoint string, cfg Config, listener ports.StateListener, log zerolog.Logger) *HTTPPoller {
	cfg = cfg.withDefaults()
	return &HTTPPoller{
		endpoint: endpoint,
		cfg:      cfg,
		httpc:    &http.Client{Timeout: cfg.RequestTimeout},
		rc:       &reconnector{cfg: cfg, listener: listener, log: log},
		log:      log,
	}
}

func newFilter(ctx context.Context, client *rpc.Client, q ethereum.FilterQuery) (string, error) {
	var id string
	if err := client.CallContext(ctx, &id, "eth_newFilter", filterArg(q, "latest")); err != nil {
		return "", fmt.Errorf("eth_newFilter: %w", err)
	}
	if id == "" {
		return "", errors.New("eth_newFilter: empty filter id")
	}
	return id, nil
}

func filterChanges(ctx context.Context, client *rpc.Client, id string) ([]types.Log, error) {
	var logs []types.Log
	if err := client.CallContext(ctx, &logs, "eth_getFilterChanges", id); err != nil {
		return nil, fmt.Errorf("eth_getFilterChanges: %w", err)
	}
	return logs, nil
}

// SubscribeLogs installs the filter and starts polling into sink. Failure to
// install the first filter is returned as a subscription error.
func (p *HTTPPoller) SubscribeLogs(ctx context.Context, q ethereum.FilterQuery, sink chan<- []types.Log) (ethereum.Subscription, error) {
	p.rc.notify(domain.SubscriptionConnecting)

	client, err := rpc.DialOptions(ctx, p.endpoint, rpc.WithHTTPClient(p.httpc))
	if err != nil {
		p.rc.notify(domain.SubscriptionFailed)
		return nil, subscribeError(err)
	}

	id, err := newFilter(ctx, client, q)
	if err != nil {
		client.Close()
		p.rc.notify(domain.SubscriptionFailed)
		return nil, subscribeError(err)
	}
	p.rc.notify(domain.SubscriptionSubscribed)
	p.log.Info().Str("filter", id).Dur("interval", p.cfg.PollInterval).Msg("Polling log filter installed")

	sub := newSubscription(ctx)
	ps := &pollSubscription{poller: p, client: client, sub: sub, query: q, sink: sink}
	ps.filterID.Store(id)
	sub.onStop = ps.uninstall
	go ps.run()

	return sub, nil
}

type pollSubscription struct {
	poller   *HTTPPoller
	client   *rpc.Client
	sub      *subscription
	query    ethereum.FilterQuery
	sink     chan<- []types.Log
	filterID atomic.Value // string
}

// uninstall removes the server-side filter on a best-effort basis and
// releases the client.
func (s *pollSubscription) uninstall() {
	defer s.client.Close()

	id, _ := s.filterID.Load().(string)
	if id == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.client.CallContext(ctx, nil, "eth_uninstallFilter", id)
}

func (s *pollSubscription) run() {
	defer close(s.sub.done)

	ticker := time.NewTicker(s.poller.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.sub.ctx.Done():
			return
		case <-ticker.C:
		}

		id, _ := s.filterID.Load().(string)
		logs, err := filterChanges(s.sub.ctx, s.client, id)
		if err != nil {
			if s.sub.ctx.Err() != nil {
				return
			}
			if isFatalRPC(err) {
				s.poller.rc.notify(domain.SubscriptionFailed)
				s.sub.fail(subscribeError(err))
				return
			}
			if isFilterNotFound(err) {
				s.poller.log.Warn().Str("filter", id).Msg("Log filter expired on provider")
			}
			if err := s.reinstall(err); err != nil {
				if !errors.Is(err, errStopped) {
					s.sub.fail(err)
				}
				return
			}
			continue
		}
		if len(logs) == 0 {
			continue
		}

		select {
		case s.sink <- logs:
		case <-s.sub.ctx.Done():
			return
		}
	}
}

func (s *pollSubscription) reinstall(cause error) error {
	return s.poller.rc.retry(s.sub, cause, func() error {
		id, err := newFilter(s.sub.ctx, s.client, s.query)
		if err != nil {
			return err
		}
		s.filterID.Store(id)
		return nil
	})
}
