package rfid

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shelfscan/internal/bus"
)

// Read models for scan handling. These are deliberately flat: they cross
// a process boundary twice, once to the reader display and once to the
// admin UI over WebSocket.

type Card struct {
	UID       string    `json:"uid"`
	CreatedAt time.Time `json:"createdAt"`
}

type Client struct {
	CardID string `json:"cardId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type Book struct {
	CardID string `json:"cardId"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type Borrow struct {
	ID           uuid.UUID  `json:"id"`
	BookCardID   string     `json:"bookCardId"`
	ClientCardID string     `json:"clientCardId"`
	BorrowedAt   time.Time  `json:"borrowedAt"`
	DueDate      time.Time  `json:"dueDate"`
	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
}

// Snapshot is what a single scan event resolves to for observers: the
// uid plus whichever entities it matched. Unmatched fields stay null.
type Snapshot struct {
	UID     string   `json:"uid"`
	Card    *Card    `json:"card"`
	Client  *Client  `json:"client"`
	Book    *Book    `json:"book"`
	Borrows []Borrow `json:"borrows"`
}

// Directory is the persistence read contract the scan subsystem consumes.
// Lookups return nil (not an error) when the uid matches nothing.
type Directory interface {
	FindCardByUID(ctx context.Context, uid string) (*Card, error)
	FindClientByUID(ctx context.Context, uid string) (*Client, error)
	FindBookByUID(ctx context.Context, uid string) (*Book, error)
	FindActiveBorrowsForClient(ctx context.Context, clientCardID string) ([]Borrow, error)
}

// Bus is the slice of the bus client the scan subsystem needs.
type Bus interface {
	Publish(topic string, payload any)
	OnMessage(h bus.Handler) *bus.Subscription
	OffMessage(sub *bus.Subscription)
}

// Notifier pushes scan events to connected UI observers.
type Notifier interface {
	Broadcast(event string, data any)
}

// UI event names shared with the admin frontend.
const (
	EventScanned            = "rfid/scanned"
	EventCancelled          = "rfid/cancelled"
	EventRegisterResult     = "rfid/register-result"
	EventRegisterBookResult = "rfid/register-book-result"
)

type ledPayload struct {
	Color string `json:"color"`
}

const (
	ledRed   = "red"
	ledGreen = "green"
)

type scanCommand struct {
	Action string `json:"action"`
}

type scanResult struct {
	UID string `json:"uid"`
}
