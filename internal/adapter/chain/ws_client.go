package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"reward-indexer/internal/core/domain"
	"reward-indexer/internal/core/ports"
	"reward-indexer/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WSClient streams logs over a WebSocket eth_subscribe("logs") subscription.
// Each notification is delivered as a one-log batch. A dropped connection is
// redialled with exponential backoff and the subscription re-created.
type WSClient struct {
	endpoint  string
	cfg       Config
	dialer    *websocket.Dialer
	requestID atomic.Uint64
	rc        *reconnector
	log       zerolog.Logger
}

// NewWSClient creates a WebSocket log source. No connection is made until
// SubscribeLogs.
func NewWSClient(endpoint string, cfg Config, listener ports.StateListener, log zerolog.Logger) *WSClient {
	cfg = cfg.withDefaults()
	return &WSClient{
		endpoint: endpoint,
		cfg:      cfg,
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.RequestTimeout,
		},
		rc:  &reconnector{cfg: cfg, listener: listener, log: log},
		log: log,
	}
}

// wsConn is one live connection with its provider subscription id.
type wsConn struct {
	conn    *websocket.Conn
	subID   string
	writeMu sync.Mutex
}

func (c *wsConn) writeJSON(v interface{}, timeout time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(timeout))
	return c.conn.WriteJSON(v)
}

func (c *wsConn) ping(timeout time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(timeout))
}

// SubscribeLogs dials, subscribes and starts streaming into sink. The first
// connection is synchronous: its failure is returned as a subscription error.
func (c *WSClient) SubscribeLogs(ctx context.Context, q ethereum.FilterQuery, sink chan<- []types.Log) (ethereum.Subscription, error) {
	c.rc.notify(domain.SubscriptionConnecting)

	conn, err := c.open(ctx, q)
	if err != nil {
		c.rc.notify(domain.SubscriptionFailed)
		return nil, subscribeError(err)
	}
	c.rc.notify(domain.SubscriptionSubscribed)
	c.log.Info().Str("subscription", conn.subID).Msg("WebSocket log subscription established")

	sub := newSubscription(ctx)
	ws := &wsSubscription{client: c, sub: sub, query: q, sink: sink, conn: conn}
	sub.onStop = ws.close
	go ws.run()

	return sub, nil
}

// open dials and performs the eth_subscribe handshake.
func (c *WSClient) open(ctx context.Context, q ethereum.FilterQuery) (*wsConn, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}
	wc := &wsConn{conn: conn}

	id := c.requestID.Add(1)
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  "eth_subscribe",
		Params:  []interface{}{"logs", filterArg(q, "")},
	}
	if err := wc.writeJSON(req, c.cfg.RequestTimeout); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write eth_subscribe: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.cfg.RequestTimeout))
	for {
		var msg rpcMessage
		if err := conn.ReadJSON(&msg); err != nil {
			conn.Close()
			return nil, fmt.Errorf("read eth_subscribe response: %w", err)
		}
		if msg.ID == nil || *msg.ID != id {
			continue
		}
		if msg.Error != nil {
			conn.Close()
			return nil, msg.Error
		}
		if err := json.Unmarshal(msg.Result, &wc.subID); err != nil || wc.subID == "" {
			conn.Close()
			return nil, fmt.Errorf("invalid subscription id %s", string(msg.Result))
		}
		return wc, nil
	}
}

type wsSubscription struct {
	client *WSClient
	sub    *subscription
	query  ethereum.FilterQuery
	sink   chan<- []types.Log

	mu   sync.Mutex
	conn *wsConn
}

func (w *wsSubscription) current() *wsConn {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn
}

func (w *wsSubscription) swap(conn *wsConn) {
	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()
}

// close sends a best-effort eth_unsubscribe and drops the connection.
func (w *wsSubscription) close() {
	conn := w.current()
	if conn == nil {
		return
	}
	id := w.client.requestID.Add(1)
	_ = conn.writeJSON(rpcRequest{JSONRPC: "2.0", ID: id, Method: "eth_unsubscribe", Params: []interface{}{conn.subID}}, time.Second)
	conn.conn.Close()
}

func (w *wsSubscription) run() {
	defer close(w.sub.done)

	for {
		err := w.readLoop(w.current())
		if w.sub.ctx.Err() != nil {
			return
		}

		err = w.client.rc.retry(w.sub, err, func() error {
			conn, err := w.client.open(w.sub.ctx, w.query)
			if err != nil {
				return err
			}
			w.swap(conn)
			return nil
		})
		if errors.Is(err, errStopped) {
			return
		}
		if err != nil {
			w.sub.fail(err)
			return
		}
	}
}

// readLoop dispatches notifications until the connection fails or the
// subscription stops.
func (w *wsSubscription) readLoop(conn *wsConn) error {
	cfg := w.client.cfg
	log := w.client.log

	conn.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	conn.conn.SetPongHandler(func(string) error {
		return conn.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)
	go func() {
		ticker := time.NewTicker(cfg.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stopPing:
				return
			case <-w.sub.ctx.Done():
				conn.conn.Close()
				return
			case <-ticker.C:
				// A dead connection surfaces as a read error.
				_ = conn.ping(cfg.RequestTimeout)
			}
		}
	}()

	for {
		_, data, err := conn.conn.ReadMessage()
		if err != nil {
			conn.conn.Close()
			return err
		}
		conn.conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))

		var msg rpcMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Warn().Err(err).Msg("Ignoring malformed WebSocket frame")
			continue
		}
		if msg.Method != "eth_subscription" || msg.Params == nil || msg.Params.Subscription != conn.subID {
			continue
		}

		var lg types.Log
		if err := json.Unmarshal(msg.Params.Result, &lg); err != nil {
			log.Warn().Err(apperror.ErrDecode("log notification", err)).Msg("Skipping undecodable log notification")
			continue
		}

		select {
		case w.sink <- []types.Log{lg}:
		case <-w.sub.ctx.Done():
			conn.conn.Close()
			return w.sub.ctx.Err()
		}
	}
}
