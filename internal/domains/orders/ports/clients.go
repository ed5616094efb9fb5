package ports

import (
	"context"
	"fmt"
)

// Downstream service names used in error reporting.
const (
	ServiceUser    = "user"
	ServiceProduct = "product"
)

// UserLookupOutcome reports whether the user directory knows the id.
type UserLookupOutcome string

const (
	UserFound    UserLookupOutcome = "found"
	UserNotFound UserLookupOutcome = "not_found"
)

// StockOutcome classifies the inventory ledger's answer to a decrement.
type StockOutcome string

const (
	StockDecremented    StockOutcome = "decremented"
	StockProductMissing StockOutcome = "product_missing"
	StockInsufficient   StockOutcome = "insufficient"
)

// StockDecrementResult carries the ledger outcome. NewStock is only
// meaningful when Outcome is StockDecremented.
type StockDecrementResult struct {
	Outcome  StockOutcome
	NewStock int64
}

// UserDirectory confirms user existence. Implementations apply a bounded
// timeout and never retry.
type UserDirectory interface {
	LookupUser(ctx context.Context, userID int64) (UserLookupOutcome, error)
}

// InventoryLedger atomically checks and decrements stock on the remote side.
// IncreaseStock is the compensating action used when a step after a
// successful decrement fails.
type InventoryLedger interface {
	DecreaseStock(ctx context.Context, productID, quantity int64) (StockDecrementResult, error)
	IncreaseStock(ctx context.Context, productID, quantity int64) error
}

// UnavailableError reports a transport-level failure (connection refused,
// timeout) talking to a downstream service.
type UnavailableError struct {
	Service string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// UpstreamError reports that a downstream service responded outside its
// documented contract (unexpected status or undecodable body).
type UpstreamError struct {
	Service string
	Status  int
	Reason  string
}

func (e *UpstreamError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s service returned unexpected response (status %d): %s", e.Service, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s service returned unexpected status %d", e.Service, e.Status)
}
