package domain

import "time"

// Review represents a guest review left for a property after a completed stay
type Review struct {
	ID         string
	PropertyID string
	UserID     string
	Rating     int // 1..5
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsValidRating reports whether the rating is within the allowed range
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
