package rfid

import (
	"context"
	"log/slog"
	"time"

	"shelfscan/internal/bus"
)

// Announcer is the always-on listener behind ambient scan handling: a
// librarian holding a card to the idle reader still gets the card looked
// up and pushed to every connected UI, whether or not an API caller is
// waiting for a scan. It runs on every scan message in addition to any
// pending Correlator listener; both fire, by design.
type Announcer struct {
	bus        Bus
	dir        Directory
	notifier   Notifier
	topics     bus.Topics
	greenDelay time.Duration
	log        *slog.Logger

	sub *bus.Subscription

	// after is swappable so tests do not sleep through the green delay.
	after func(d time.Duration, f func()) *time.Timer
}

func NewAnnouncer(b Bus, dir Directory, notifier Notifier, topics bus.Topics, greenDelay time.Duration, log *slog.Logger) *Announcer {
	return &Announcer{
		bus:        b,
		dir:        dir,
		notifier:   notifier,
		topics:     topics,
		greenDelay: greenDelay,
		log:        log,
		after:      time.AfterFunc,
	}
}

// Start registers the process-lifetime listener.
func (a *Announcer) Start() {
	a.sub = a.bus.OnMessage(a.handle)
	a.log.Info("ambient scan announcer started")
}

func (a *Announcer) Stop() {
	a.bus.OffMessage(a.sub)
	a.sub = nil
}

func (a *Announcer) handle(topic string, payload []byte) {
	switch topic {
	case a.topics.ScanResult:
		a.handleScan(payload)
	case a.topics.CancelExternal:
		a.handleCancel()
	}
}

func (a *Announcer) handleScan(payload []byte) {
	ctx := context.Background()

	var msg scanResult
	if err := json.Unmarshal(payload, &msg); err != nil || msg.UID == "" {
		a.log.Error("invalid scan message", "payload", string(payload))
		a.bus.Publish(a.topics.Led, ledPayload{Color: ledRed})
		return
	}

	a.log.Info("card scanned", "uid", msg.UID)

	// Red while we look things up; green later only if something matched.
	a.bus.Publish(a.topics.Led, ledPayload{Color: ledRed})

	snapshot := Snapshot{UID: msg.UID, Borrows: []Borrow{}}

	card, err := a.dir.FindCardByUID(ctx, msg.UID)
	if err != nil {
		a.log.Error("card lookup failed", "uid", msg.UID, "error", err)
		return
	}
	if card == nil {
		a.log.Info("scanned card not registered", "uid", msg.UID)
		a.announce(snapshot)
		return
	}
	snapshot.Card = card

	// A client match takes precedence over a book match.
	client, err := a.dir.FindClientByUID(ctx, msg.UID)
	if err != nil {
		a.log.Error("client lookup failed", "uid", msg.UID, "error", err)
		return
	}
	if client != nil {
		borrows, err := a.dir.FindActiveBorrowsForClient(ctx, client.CardID)
		if err != nil {
			a.log.Error("borrow lookup failed", "uid", msg.UID, "error", err)
			return
		}
		a.log.Info("client scanned", "name", client.Name, "activeBorrows", len(borrows))

		snapshot.Client = client
		snapshot.Borrows = borrows
		a.announce(snapshot)
		a.scheduleGreen()
		return
	}

	book, err := a.dir.FindBookByUID(ctx, msg.UID)
	if err != nil {
		a.log.Error("book lookup failed", "uid", msg.UID, "error", err)
		return
	}
	if book != nil {
		a.log.Info("book scanned", "title", book.Title)

		snapshot.Book = book
		a.announce(snapshot)
		a.scheduleGreen()
		return
	}

	a.log.Info("card registered but not assigned", "uid", msg.UID)
	a.announce(snapshot)
}

func (a *Announcer) handleCancel() {
	a.log.Info("scan cancelled from reader")
	a.bus.Publish(a.topics.Led, ledPayload{Color: ledGreen})
	a.notifier.Broadcast(EventCancelled, struct{}{})
}

func (a *Announcer) announce(snapshot Snapshot) {
	a.bus.Publish(a.topics.Response, snapshot)
	a.notifier.Broadcast(EventScanned, snapshot)
}

func (a *Announcer) scheduleGreen() {
	a.after(a.greenDelay, func() {
		a.bus.Publish(a.topics.Led, ledPayload{Color: ledGreen})
	})
}
