package book

import (
	"errors"
	"strings"

	"shelfscan/internal/domain/card"
)

var (
	ErrEmptyTitle    = errors.New("book title cannot be empty")
	ErrTitleTooLong  = errors.New("book title is too long (max 500 characters)")
	ErrEmptyAuthor   = errors.New("book author cannot be empty")
	ErrAuthorTooLong = errors.New("book author is too long (max 255 characters)")
)

const (
	MaxTitleLength  = 500
	MaxAuthorLength = 255
)

// Book is a library item identified by the UID of the RFID tag glued
// into its cover.
type Book struct {
	cardID string
	title  string
	author string
}

func NewBook(cardID, title, author string) (*Book, error) {
	if err := card.ValidateUID(cardID); err != nil {
		return nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	return &Book{
		cardID: strings.TrimSpace(cardID),
		title:  strings.TrimSpace(title),
		author: strings.TrimSpace(author),
	}, nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateAuthor(author string) error {
	author = strings.TrimSpace(author)
	if author == "" {
		return ErrEmptyAuthor
	}
	if len(author) > MaxAuthorLength {
		return ErrAuthorTooLong
	}
	return nil
}

func (b *Book) CardID() string { return b.cardID }
func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
