package card

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyUID   = errors.New("card uid cannot be empty")
	ErrUIDTooLong = errors.New("card uid is too long (max 64 characters)")
)

const MaxUIDLength = 64

// Card is a physical RFID tag known to the system. The UID is burned into
// the tag and acts as the primary key correlating it to a client or book.
type Card struct {
	uid       string
	createdAt time.Time
}

func NewCard(uid string, createdAt time.Time) (*Card, error) {
	uid = strings.TrimSpace(uid)
	if err := ValidateUID(uid); err != nil {
		return nil, err
	}

	return &Card{
		uid:       uid,
		createdAt: createdAt,
	}, nil
}

func ValidateUID(uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ErrEmptyUID
	}
	if len(uid) > MaxUIDLength {
		return ErrUIDTooLong
	}
	return nil
}

func (c *Card) UID() string          { return c.uid }
func (c *Card) CreatedAt() time.Time { return c.createdAt }
