package database

import "errors"

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBorrowNotFound  = errors.New("borrow not found")
	ErrBookUnavailable = errors.New("no copy of the book is available for this client")
)
