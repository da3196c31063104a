package errs

import "errors"

// Domain-specific sentinel errors for usecase layers
var (
	// Card errors
	ErrCardNotFound      = errors.New("card not found")
	ErrCardAlreadyExists = errors.New("card already exists")

	// Client errors
	ErrClientNotFound = errors.New("client not found")
	ErrCardInUse      = errors.New("card already assigned")

	// Book errors
	ErrBookNotFound = errors.New("book not found")

	// Borrow errors
	ErrBorrowNotFound  = errors.New("borrow not found")
	ErrBookBorrowed    = errors.New("book is already borrowed")
	ErrAlreadyReturned = errors.New("book already returned")
	ErrNoActiveBorrow  = errors.New("no active borrow for book")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
