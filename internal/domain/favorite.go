package domain

import "time"

// Favorite represents a property saved by a user
type Favorite struct {
	UserID     string
	PropertyID string
	CreatedAt  time.Time
}
