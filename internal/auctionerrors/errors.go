package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrDuplicateEmail   = errors.New("email already registered")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrAuthRequired       = errors.New("authentication required")
)

// business logic errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrBidTooLow       = errors.New("bid amount too low")
	ErrSellerCannotBid = errors.New("seller cannot bid on own item")
	ErrSellerCannotAsk = errors.New("seller cannot ask about own item")
	ErrNotSeller       = errors.New("only the item's seller may do this")
)
