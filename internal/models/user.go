package models

// User represents a registered account.
//
// PasswordHash is never serialized: the public representation of a user is
// only its id and username.
type User struct {
	// ID is the unique identifier, assigned by the store on creation.
	ID int64 `json:"id"`

	// Username is unique across all users (4-20 characters).
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"-"`
}
