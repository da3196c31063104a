package client

import (
	"errors"
	"regexp"
	"strings"

	"shelfscan/internal/domain/card"
)

var (
	ErrEmptyName    = errors.New("client name cannot be empty")
	ErrNameTooLong  = errors.New("client name is too long (max 255 characters)")
	ErrInvalidEmail = errors.New("invalid email format")
)

const MaxNameLength = 255

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Client is a library member identified by the UID of their RFID card.
type Client struct {
	cardID string
	name   string
	email  Email
}

func NewClient(cardID, name string, email Email) (*Client, error) {
	if err := card.ValidateUID(cardID); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Client{
		cardID: strings.TrimSpace(cardID),
		name:   strings.TrimSpace(name),
		email:  email,
	}, nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (c *Client) CardID() string { return c.cardID }
func (c *Client) Name() string   { return c.name }
func (c *Client) Email() Email   { return c.email }
