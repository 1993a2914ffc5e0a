package reviews

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewResponse отзыв в ответе сервиса
type ReviewResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PropertyReviewsResponse отзывы объекта со сводной оценкой
type PropertyReviewsResponse struct {
	PropertyID    string            `json:"propertyId"`
	AverageRating float64           `json:"averageRating"`
	Total         int               `json:"total"`
	Reviews       []*ReviewResponse `json:"reviews"`
}

func fromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
