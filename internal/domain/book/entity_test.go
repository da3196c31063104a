//go:build unit

package book_test

import (
	"strings"
	"testing"

	"shelfscan/internal/domain/book"
	"shelfscan/internal/domain/card"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := book.NewBook("04d4e5f6", "The Go Programming Language", "Donovan & Kernighan")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "04d4e5f6", actual.CardID())
		assert.Equal(t, "The Go Programming Language", actual.Title())
		assert.Equal(t, "Donovan & Kernighan", actual.Author())
	})

	t.Run("title and author are trimmed", func(t *testing.T) {
		actual, err := book.NewBook("04d4e5f6", "  SICP  ", "  Abelson  ")
		require.NoError(t, err)
		assert.Equal(t, "SICP", actual.Title())
		assert.Equal(t, "Abelson", actual.Author())
	})

	t.Run("title validation", func(t *testing.T) {
		cases := []struct {
			name  string
			title string
			errIs error
		}{
			{name: "empty title", title: "", errIs: book.ErrEmptyTitle},
			{name: "whitespace only title", title: "   ", errIs: book.ErrEmptyTitle},
			{name: "maximum length title", title: strings.Repeat("a", book.MaxTitleLength)},
			{name: "title exceeds maximum length", title: strings.Repeat("a", book.MaxTitleLength+1), errIs: book.ErrTitleTooLong},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := book.NewBook("04d4e5f6", tc.title, "Abelson")
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("author validation", func(t *testing.T) {
		cases := []struct {
			name   string
			author string
			errIs  error
		}{
			{name: "empty author", author: "", errIs: book.ErrEmptyAuthor},
			{name: "maximum length author", author: strings.Repeat("a", book.MaxAuthorLength)},
			{name: "author exceeds maximum length", author: strings.Repeat("a", book.MaxAuthorLength+1), errIs: book.ErrAuthorTooLong},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := book.NewBook("04d4e5f6", "SICP", tc.author)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid card uid is rejected", func(t *testing.T) {
		_, err := book.NewBook("", "SICP", "Abelson")
		require.ErrorIs(t, err, card.ErrEmptyUID)
	})
}
