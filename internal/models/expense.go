package models

// Expense is a single expense record owned by exactly one user.
// Only the owner may read, update or delete it; the check lives in the
// service layer, not the store.
type Expense struct {
	// ID is the unique identifier, assigned by the store on creation.
	ID int64 `json:"id"`

	// Title describes the expense (1-50 characters).
	Title string `json:"title"`

	// Amount is the non-negative expense amount. Two fractional digits
	// of precision are expected.
	Amount float64 `json:"amount"`

	// OwnerID references the owning user. Deleting the owner cascades
	// deletion of their expenses at the store level.
	OwnerID int64 `json:"owner_id"`

	// CreatedAt is the Unix timestamp when the expense was created.
	CreatedAt int64 `json:"-"`
}
