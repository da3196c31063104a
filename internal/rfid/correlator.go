// Package rfid bridges the asynchronous card-reader event stream with
// synchronous API callers waiting for "the next card scan".
package rfid

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/google/uuid"

	"shelfscan/internal/bus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Correlator matches one externally-arriving card-read event to one
// waiting caller. Every Scan call gets its own isolated request with its
// own cancel flag and resolution guard, so concurrent callers never
// interfere with each other; a single inbound scan message resolves all
// of them independently (broadcast, not competing-consumers).
type Correlator struct {
	bus     Bus
	dir     Directory
	topics  bus.Topics
	log     *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	pending map[uuid.UUID]*scanRequest

	cancelSub *bus.Subscription

	// newTimer is swapped in tests so timeouts resolve without real waits.
	newTimer func(time.Duration) *time.Timer
}

// scanRequest is one outstanding "waiting for a card" operation. It is
// resolved exactly once; the timer, the bus listener, a cancel call and
// the caller's context race for that resolution through resolveOnce.
type scanRequest struct {
	id          uuid.UUID
	resolveOnce sync.Once
	done        chan Outcome // buffered, resolve never blocks
	cancelled   atomic.Bool
}

func NewCorrelator(b Bus, dir Directory, topics bus.Topics, timeout time.Duration, log *slog.Logger) *Correlator {
	c := &Correlator{
		bus:      b,
		dir:      dir,
		topics:   topics,
		log:      log,
		timeout:  timeout,
		pending:  make(map[uuid.UUID]*scanRequest),
		newTimer: time.NewTimer,
	}

	// Hardware-side cancel button aborts whatever is pending.
	c.cancelSub = b.OnMessage(func(topic string, _ []byte) {
		if topic == c.topics.CancelExternal {
			c.CancelScan()
		}
	})

	return c
}

func (c *Correlator) Close() {
	c.bus.OffMessage(c.cancelSub)
	c.CancelScan()
}

type scanOptions struct {
	topic   string
	payload any
	timeout time.Duration
}

type ScanOption func(*scanOptions)

// WithCommand overrides the scan-start command topic and payload.
func WithCommand(topic string, payload any) ScanOption {
	return func(o *scanOptions) {
		o.topic = topic
		o.payload = payload
	}
}

func WithTimeout(d time.Duration) ScanOption {
	return func(o *scanOptions) {
		o.timeout = d
	}
}

// Scan tells the reader to begin sensing, then blocks until the next
// card read resolves against policy, the timeout fires, or the request
// is cancelled. It never returns an error: every path terminates in one
// of the four Outcome variants. Reader LED feedback (green on accept,
// red otherwise) is published as a side effect of resolution.
func (c *Correlator) Scan(ctx context.Context, policy Policy, opts ...ScanOption) Outcome {
	o := scanOptions{
		topic:   c.topics.ScanCommand,
		payload: scanCommand{Action: "scan"},
		timeout: c.timeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	req := &scanRequest{
		id:   uuid.New(),
		done: make(chan Outcome, 1),
	}

	c.mu.Lock()
	c.pending[req.id] = req
	c.mu.Unlock()

	sub := c.bus.OnMessage(func(topic string, payload []byte) {
		c.handleMessage(ctx, req, policy, topic, payload)
	})
	defer func() {
		c.bus.OffMessage(sub)
		c.mu.Lock()
		delete(c.pending, req.id)
		c.mu.Unlock()
	}()

	c.bus.Publish(o.topic, o.payload)

	timer := c.newTimer(o.timeout)
	defer timer.Stop()

	select {
	case out := <-req.done:
		return out
	case <-timer.C:
		c.resolve(req, Timeout())
	case <-ctx.Done():
		req.cancelled.Store(true)
		c.resolve(req, Cancelled())
	}
	return <-req.done
}

// CancelScan aborts every pending request immediately. Calling it with
// nothing pending, or twice, has no effect beyond the first cancellation.
func (c *Correlator) CancelScan() {
	c.mu.Lock()
	reqs := make([]*scanRequest, 0, len(c.pending))
	for _, req := range c.pending {
		reqs = append(reqs, req)
	}
	c.mu.Unlock()

	for _, req := range reqs {
		req.cancelled.Store(true)
		c.resolve(req, Cancelled())
	}
}

// PendingScans reports requests currently awaiting a card.
func (c *Correlator) PendingScans() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// handleMessage is the per-request bus listener. A malformed payload or
// a failed directory lookup leaves the request pending; a later
// well-formed message can still resolve it.
func (c *Correlator) handleMessage(ctx context.Context, req *scanRequest, policy Policy, topic string, payload []byte) {
	// Cancellation outranks a scan message arriving in the same pass.
	if req.cancelled.Load() {
		c.resolve(req, Cancelled())
		return
	}

	if topic != c.topics.ScanResult {
		return
	}

	var msg scanResult
	if err := json.Unmarshal(payload, &msg); err != nil || msg.UID == "" {
		c.log.Error("invalid scan message", "payload", string(payload))
		return
	}

	card, err := c.dir.FindCardByUID(ctx, msg.UID)
	if err != nil {
		c.log.Error("card lookup failed", "uid", msg.UID, "error", err)
		return
	}

	decision := policy(ctx, msg.UID, card)
	if !decision.OK {
		c.resolve(req, Rejected(msg.UID, decision.Reason))
		return
	}
	c.resolve(req, OK(msg.UID))
}

// resolve settles a request with the first outcome offered; later
// attempts are ignored. LED feedback belongs to the winning transition
// only, so a timeout that loses the race to a scan result publishes
// nothing.
func (c *Correlator) resolve(req *scanRequest, out Outcome) {
	req.resolveOnce.Do(func() {
		color := ledRed
		if out.Status == StatusOK {
			color = ledGreen
		}
		c.bus.Publish(c.topics.Led, ledPayload{Color: color})
		req.done <- out
	})
}
