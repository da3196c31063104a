//go:build unit

package borrow_test

import (
	"testing"
	"time"

	"shelfscan/internal/domain/borrow"
	"shelfscan/internal/domain/card"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrow(t *testing.T) {
	borrowedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := borrow.NewBorrow("04d4e5f6", "04a1b2c3", borrowedAt)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "04d4e5f6", actual.BookCardID())
		assert.Equal(t, "04a1b2c3", actual.ClientCardID())
		assert.Equal(t, borrowedAt, actual.BorrowedAt())
		assert.Equal(t, borrowedAt.Add(borrow.LoanPeriod), actual.DueDate())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.ReturnedAt())
	})

	t.Run("invalid card uids are rejected", func(t *testing.T) {
		_, err := borrow.NewBorrow("", "04a1b2c3", borrowedAt)
		require.ErrorIs(t, err, card.ErrEmptyUID)

		_, err = borrow.NewBorrow("04d4e5f6", "", borrowedAt)
		require.ErrorIs(t, err, card.ErrEmptyUID)
	})

	t.Run("return closes the borrow", func(t *testing.T) {
		b, err := borrow.NewBorrow("04d4e5f6", "04a1b2c3", borrowedAt)
		require.NoError(t, err)

		returnedAt := borrowedAt.Add(48 * time.Hour)
		require.NoError(t, b.Return(returnedAt))

		assert.False(t, b.IsActive())
		require.NotNil(t, b.ReturnedAt())
		assert.Equal(t, returnedAt, *b.ReturnedAt())
	})

	t.Run("returning twice fails", func(t *testing.T) {
		b, err := borrow.NewBorrow("04d4e5f6", "04a1b2c3", borrowedAt)
		require.NoError(t, err)

		require.NoError(t, b.Return(borrowedAt.Add(time.Hour)))
		require.ErrorIs(t, b.Return(borrowedAt.Add(2*time.Hour)), borrow.ErrAlreadyReturned)
	})

	t.Run("return before borrow date fails", func(t *testing.T) {
		b, err := borrow.NewBorrow("04d4e5f6", "04a1b2c3", borrowedAt)
		require.NoError(t, err)

		require.ErrorIs(t, b.Return(borrowedAt.Add(-time.Hour)), borrow.ErrReturnBeforeOut)
	})

	t.Run("overdue only after the due date while active", func(t *testing.T) {
		b, err := borrow.NewBorrow("04d4e5f6", "04a1b2c3", borrowedAt)
		require.NoError(t, err)

		assert.False(t, b.IsOverdue(borrowedAt))
		assert.False(t, b.IsOverdue(b.DueDate()))
		assert.True(t, b.IsOverdue(b.DueDate().Add(time.Minute)))

		require.NoError(t, b.Return(b.DueDate().Add(time.Hour)))
		assert.False(t, b.IsOverdue(b.DueDate().Add(2*time.Hour)))
	})

	t.Run("reconstruct preserves persisted state", func(t *testing.T) {
		id := uuid.New()
		returnedAt := borrowedAt.Add(time.Hour)
		b := borrow.Reconstruct(id, "04d4e5f6", "04a1b2c3", borrowedAt, borrowedAt.Add(borrow.LoanPeriod), &returnedAt)

		assert.Equal(t, id, b.ID())
		assert.False(t, b.IsActive())
		require.NotNil(t, b.ReturnedAt())
		assert.Equal(t, returnedAt, *b.ReturnedAt())
	})
}
