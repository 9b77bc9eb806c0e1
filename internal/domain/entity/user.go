package entity

import "time"

// User is an admin panel account. Passwords are stored as bcrypt hashes in
// the Password field and never serialized.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
