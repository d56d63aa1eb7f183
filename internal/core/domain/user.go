package domain

import "time"

// User models a registered account. Accounts are immutable after signup:
// there are no update or delete operations anywhere in the system.
type User struct {
	ID           int64     `json:"id"              db:"id"`
	Name         string    `json:"name"            db:"name"`
	Email        string    `json:"email"           db:"email"`
	Profile      string    `json:"profile"         db:"profile"`
	PasswordHash string    `json:"-"               db:"hashed_password"`
	CreatedAt    time.Time `json:"created_at"      db:"created_at"`
}
