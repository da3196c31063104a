// Package bus maintains the connection to the pub/sub broker shared with
// the RFID reader hardware and fans every inbound message out to all
// registered listeners.
package bus

import (
	"log/slog"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nats-io/nats.go"

	"shelfscan/internal/pkg/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler receives every message on every subscribed topic. Payload is
// the raw bytes as they arrived; decoding is the listener's problem.
type Handler func(topic string, payload []byte)

// Subscription identifies one registered handler so a listener can
// deregister exactly the handler it added and no other.
type Subscription struct {
	id uint64
}

type entry struct {
	id uint64
	h  Handler
}

// Client wraps a NATS connection. Publishing is best-effort and
// fire-and-forget: a disabled or disconnected client logs and drops,
// it never returns an error to the domain.
type Client struct {
	cfg    config.BusConfig
	topics Topics
	log    *slog.Logger

	mu       sync.Mutex
	conn     *nats.Conn
	nextID   uint64
	handlers []entry // registration order preserved for dispatch
}

func NewClient(cfg config.BusConfig, log *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		topics: TopicsForDevice(cfg.DevicePrefix),
		log:    log,
	}
}

func (c *Client) Topics() Topics {
	return c.topics
}

// Connect dials the broker and subscribes to the fixed inbound topics.
// When the bus is disabled via config this is a logged no-op and every
// later Publish degrades to a no-op as well.
func (c *Client) Connect() error {
	if !c.cfg.Enabled {
		c.log.Info("bus is disabled, skipping connection")
		return nil
	}

	conn, err := nats.Connect(c.cfg.URL,
		nats.Name("shelfscan"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			c.log.Warn("bus disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			c.log.Info("bus reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return err
	}

	for _, topic := range []string{c.topics.ScanResult, c.topics.CancelExternal} {
		if _, err := conn.Subscribe(topic, func(msg *nats.Msg) {
			c.dispatch(msg.Subject, msg.Data)
		}); err != nil {
			conn.Close()
			return err
		}
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.log.Info("connected to bus", "url", c.cfg.URL, "device", c.cfg.DevicePrefix)
	return nil
}

func (c *Client) Close() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		if err := conn.Drain(); err != nil {
			c.log.Warn("failed to drain bus connection", "error", err)
		}
	}
}

// Publish fires payload (JSON-encoded) at topic. Transport faults are
// logged, never propagated.
func (c *Client) Publish(topic string, payload any) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		c.log.Debug("bus not connected, dropping publish", "topic", topic)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("failed to encode bus payload", "topic", topic, "error", err)
		return
	}

	if err := conn.Publish(topic, data); err != nil {
		c.log.Warn("failed to publish to bus", "topic", topic, "error", err)
		return
	}
	c.log.Debug("published to bus", "topic", topic, "payload", string(data))
}

// OnMessage registers a handler for every inbound message. Handlers run
// in registration order on each delivery.
func (c *Client) OnMessage(h Handler) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	sub := &Subscription{id: c.nextID}
	c.handlers = append(c.handlers, entry{id: sub.id, h: h})
	c.log.Debug("registered bus handler", "total", len(c.handlers))
	return sub
}

// OffMessage removes the handler registered under sub. Safe to call from
// within a dispatch callback and safe to call more than once.
func (c *Client) OffMessage(sub *Subscription) {
	if sub == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.handlers {
		if e.id == sub.id {
			c.handlers = append(c.handlers[:i], c.handlers[i+1:]...)
			c.log.Debug("removed bus handler", "remaining", len(c.handlers))
			return
		}
	}
}

// dispatch delivers one message to a snapshot of the current handler
// list, so handlers added or removed mid-delivery do not affect this
// pass. A panicking handler must not starve the ones after it.
func (c *Client) dispatch(topic string, payload []byte) {
	c.mu.Lock()
	snapshot := make([]entry, len(c.handlers))
	copy(snapshot, c.handlers)
	c.mu.Unlock()

	for _, e := range snapshot {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.log.Error("bus handler panicked", "topic", topic, "panic", r)
				}
			}()
			e.h(topic, payload)
		}()
	}
}

// Deliver injects a message as if it had arrived from the broker.
// Scan simulators and tests use it; production traffic goes through the
// NATS subscriptions set up in Connect.
func (c *Client) Deliver(topic string, payload []byte) {
	c.dispatch(topic, payload)
}
