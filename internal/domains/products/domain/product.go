package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName         = errors.New("name is required")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrNegativeStock     = errors.New("stock must not be negative")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product models a catalog entry with its current stock level.
type Product struct {
	ID    int64
	Name  string
	Price float64
	Stock int64
}

// NewProduct validates and constructs a catalog entry.
func NewProduct(id int64, name string, price float64, stock int64) (*Product, error) {
	product := &Product{ID: id, Price: price, Stock: stock}
	if err := product.SetName(name); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// SetName trims and validates the product name.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// Validate enforces invariants on the entry.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// Decrease takes quantity units off the stock, refusing to go negative.
// The check and the mutation happen together; callers serialize access.
func (p *Product) Decrease(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

// Increase returns quantity units to the stock (compensation path).
func (p *Product) Increase(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += quantity
	return nil
}
