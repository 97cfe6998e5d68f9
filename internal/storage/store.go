// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"expenses/internal/models"
)

// ErrDuplicateUsername is returned by CreateUser when the username is
// already taken. Store implementations map their native uniqueness
// violation onto it.
var ErrDuplicateUsername = errors.New("username already exists")

// Store defines the interface for user and expense persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Lookup methods return (nil, nil) when no row matches; the service layer
// decides whether that is a NotFound, Unauthorized or validation failure.
type Store interface {
	// CreateUser persists a new user. The user.ID field is populated by
	// the store. Returns ErrDuplicateUsername if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// DeleteUser removes a user. Expenses owned by the user are deleted
	// by the store's foreign-key cascade.
	DeleteUser(ctx context.Context, id int64) error

	// CreateExpense persists a new expense. The expense.ID field is
	// populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by id regardless of owner.
	GetExpense(ctx context.Context, id int64) (*models.Expense, error)

	// ListExpensesByOwner returns all expenses owned by the given user,
	// in insertion order. Returns an empty slice when there are none.
	ListExpensesByOwner(ctx context.Context, ownerID int64) ([]models.Expense, error)

	// UpdateExpense persists the given expense's title and amount.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense by id.
	DeleteExpense(ctx context.Context, id int64) error

	// Close releases any resources held by the store.
	Close() error
}
