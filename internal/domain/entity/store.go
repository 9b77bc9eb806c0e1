package entity

import "time"

// Store is the tenant root: every other catalog entity hangs off a store,
// and a store belongs to exactly one user.
type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
