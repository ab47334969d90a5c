package model

import "time"

// User is the authenticated identity record. Immutable once created;
// discarded when the session is cleared on logout.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
