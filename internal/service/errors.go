package service

import "errors"

// Sentinel errors for the service layer. Their messages double as the
// response descriptions rendered at the API boundary, so they are written
// for end users rather than for logs.
var (
	// ErrIncorrectCredentials covers both an unknown username and a wrong
	// password: the two cases are deliberately indistinguishable so the
	// login endpoint cannot be used to enumerate usernames.
	ErrIncorrectCredentials = errors.New("Incorrect credentials")

	// ErrExpenseNotFound maps to 404. It is returned before ownership is
	// evaluated, so a nonexistent id yields 404 even for non-owners.
	ErrExpenseNotFound = errors.New("Expense not found")

	// ErrNotExpenseOwner maps to 403: the expense exists but belongs to
	// someone else.
	ErrNotExpenseOwner = errors.New("You do not own this expense")
)
