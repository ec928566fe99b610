package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Coins are the secondary bidding
// currency, distinct from the team budget.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Coins        int64     `json:"coins"`
	CreatedAt    time.Time `json:"created_at"`
}
