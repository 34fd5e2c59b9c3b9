package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a registered player
type Player struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Coins     int64     `json:"coins"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
