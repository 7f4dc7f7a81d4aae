package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds the bcrypt hash and must never be serialized to clients.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
