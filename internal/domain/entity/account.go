package entity

import (
	"time"
)

// Account is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash and must never
// leave the process in any serialized form.
type Account struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the account with the password hash stripped.
// Session claims and view data are built from this copy only.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}
