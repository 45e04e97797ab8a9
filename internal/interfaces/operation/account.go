// Package operation
package operation

import "errors"

var (
	// ErrAccountNotFound the account does not exist
	ErrAccountNotFound = errors.New("account does not exist")
	// ErrAccountExists the identity has already been taken
	ErrAccountExists = errors.New("account identity has been used")
	// ErrPasswordEncode bcrypt refused the password
	ErrPasswordEncode = errors.New("password encode error")
)

// AccountOperationInterface account operation interface
type AccountOperationInterface interface {
	// GetAccount returns the account with the given identity, account is valid only when err is nil
	GetAccount(identity string) (account *Account, err error)
	// NewAccount builds an account with a hashed password without writing it to the database
	NewAccount(identity string, password string, permission Permission) (account *Account, err error)
	// AddAccount writes a new account, returns ErrAccountExists when the identity is taken
	AddAccount(account *Account) (err error)
	// EnsureAccount creates the account when missing and grants it the given permission
	EnsureAccount(identity string, password string, permission Permission) (account *Account, err error)
	// UpdateAccountPermission overwrites the permission bits of an account
	UpdateAccountPermission(account *Account, permission Permission) (err error)
	// VerifyAccountPassword reports whether password matches the stored hash
	VerifyAccountPassword(account *Account, password string) (pass bool)
}
