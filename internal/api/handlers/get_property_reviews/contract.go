package get_property_reviews

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/reviews"
)

type ReviewService interface {
	GetPropertyReviews(ctx context.Context, propertyID string) (*reviews.PropertyReviewsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
