package create_review

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/reviews"
)

type ReviewService interface {
	Create(ctx context.Context, req *reviews.CreateReviewRequest) (*reviews.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
