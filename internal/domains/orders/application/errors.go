package application

import "errors"

// Business-rule rejections surfaced by PlaceOrder. Each one is terminal for
// the attempt; nothing is retried internally.
var (
	// ErrUserNotFound signals the user directory does not know the id.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound signals the inventory ledger does not know the id.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock signals the ledger refused the decrement.
	ErrInsufficientStock = errors.New("insufficient stock")
)
