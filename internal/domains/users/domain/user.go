package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrInvalidEmail = errors.New("email must contain '@'")
)

// SignupBonus is credited to every newly registered wallet.
const SignupBonus = 1000.0

// User represents a directory entry. Wallet exists for demo realism only;
// nothing in order placement reads it.
type User struct {
	ID     int64
	Name   string
	Email  string
	Wallet float64
}

// NewUser builds a user ensuring required invariants.
func NewUser(id int64, name, email string, wallet float64) (*User, error) {
	user := &User{ID: id, Wallet: wallet}
	if err := user.SetName(name); err != nil {
		return nil, err
	}
	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	return user, nil
}

// SetName trims and validates the display name.
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.Name = name
	return nil
}

// SetEmail trims and validates the email address.
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// Validate re-applies core invariants for persistence.
func (u *User) Validate() error {
	if err := u.SetName(u.Name); err != nil {
		return err
	}
	return u.SetEmail(u.Email)
}
