package domain

import "errors"

// Status enumerates order states. Orders are only ever recorded after both
// remote checks pass, so the single reachable state is confirmed.
type Status string

const (
	StatusConfirmed Status = "confirmed"
)

var (
	ErrInvalidUserID    = errors.New("user id must be greater than zero")
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrQuantityTooLarge = errors.New("quantity exceeds the configured maximum")
)

// OrderRequest carries the fields a caller submits to place an order.
type OrderRequest struct {
	UserID    int64
	ProductID int64
	Quantity  int64
}

// Validate enforces request invariants before any remote call is made.
// maxQuantity of zero means no upper bound.
func (r OrderRequest) Validate(maxQuantity int64) error {
	if r.UserID <= 0 {
		return ErrInvalidUserID
	}
	if r.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if maxQuantity > 0 && r.Quantity > maxQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

// Order models a confirmed purchase. Immutable once created; the id is
// assigned by the store at append time.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64
	Status    Status
}

// NewConfirmedOrder builds the order record appended after both remote
// checks succeeded. The store assigns the id.
func NewConfirmedOrder(req OrderRequest) *Order {
	return &Order{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Status:    StatusConfirmed,
	}
}
