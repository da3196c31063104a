//go:build unit

package client_test

import (
	"strings"
	"testing"

	"shelfscan/internal/domain/card"
	"shelfscan/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, s string) client.Email {
	t.Helper()
	email, err := client.NewEmail(s)
	require.NoError(t, err)
	return email
}

func TestClient(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := client.NewClient("04a1b2c3", "Ada Lovelace", mustEmail(t, "ada@example.com"))
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "04a1b2c3", actual.CardID())
		assert.Equal(t, "Ada Lovelace", actual.Name())
		assert.Equal(t, "ada@example.com", actual.Email().Value())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := client.NewClient("04a1b2c3", "  Ada  ", mustEmail(t, "ada@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "Ada", actual.Name())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name       string
			clientName string
			errIs      error
		}{
			{name: "empty name", clientName: "", errIs: client.ErrEmptyName},
			{name: "whitespace only name", clientName: "   ", errIs: client.ErrEmptyName},
			{name: "maximum length name", clientName: strings.Repeat("a", client.MaxNameLength)},
			{name: "name exceeds maximum length", clientName: strings.Repeat("a", client.MaxNameLength+1), errIs: client.ErrNameTooLong},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := client.NewClient("04a1b2c3", tc.clientName, mustEmail(t, "ada@example.com"))
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid card uid is rejected", func(t *testing.T) {
		_, err := client.NewClient("", "Ada", mustEmail(t, "ada@example.com"))
		require.ErrorIs(t, err, card.ErrEmptyUID)
	})
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "ada@example.com", want: "ada@example.com"},
		{name: "subdomain and plus tag", input: "ada+books@mail.example.co.uk", want: "ada+books@mail.example.co.uk"},
		{name: "surrounding whitespace is trimmed", input: "  ada@example.com  ", want: "ada@example.com"},
		{name: "missing at sign", input: "ada.example.com", errIs: client.ErrInvalidEmail},
		{name: "missing tld", input: "ada@example", errIs: client.ErrInvalidEmail},
		{name: "empty", input: "", errIs: client.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := client.NewEmail(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}
