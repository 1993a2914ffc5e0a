package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StayService/internal/domain"
	reviewRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/review"
	propertyClient "github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo     ReviewRepository
	bookingRepo    BookingRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:     reviewRepo,
		bookingRepo:    bookingRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// Create создает отзыв. Отзыв может оставить только пользователь
// с завершенным проживанием на объекте, один отзыв на объект.
func (s *Service) Create(ctx context.Context, req *CreateReviewRequest) (*ReviewResponse, error) {
	s.logger.Info("CreateReview: user=%s, property=%s, rating=%d", req.UserID, req.PropertyID, req.Rating)

	// Валидация входных данных
	if !domain.IsValidRating(req.Rating) {
		s.logger.Warn("CreateReview: invalid rating=%d", req.Rating)
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if len(req.Comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	// Объект должен существовать
	if _, err := s.propertyClient.GetProperty(ctx, req.PropertyID); err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("CreateReview: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("CreateReview: failed to get property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// Право на отзыв - завершенное проживание
	stayed, err := s.bookingRepo.HasCompletedStay(ctx, req.UserID, req.PropertyID)
	if err != nil {
		s.logger.Error("CreateReview: failed to check completed stay: %v", err)
		return nil, fmt.Errorf("%w: failed to check completed stay: %v", ErrInternal, err)
	}
	if !stayed {
		s.logger.Warn("CreateReview: user=%s has no completed stay at property=%s", req.UserID, req.PropertyID)
		return nil, ErrNoCompletedStay
	}

	review := &domain.Review{
		PropertyID: req.PropertyID,
		UserID:     req.UserID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("CreateReview: user=%s already reviewed property=%s", req.UserID, req.PropertyID)
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("CreateReview: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReview: successfully created review id=%s", created.ID)
	return fromDomainReview(created), nil
}

// GetPropertyReviews получает отзывы объекта со средней оценкой
func (s *Service) GetPropertyReviews(ctx context.Context, propertyID string) (*PropertyReviewsResponse, error) {
	s.logger.Info("GetPropertyReviews: fetching reviews for property=%s", propertyID)

	reviews, err := s.reviewRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		s.logger.Error("GetPropertyReviews: repository error for property=%s: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetPropertyReviews - repository error: %v", ErrInternal, err)
	}

	avg, total, err := s.reviewRepo.AverageRating(ctx, propertyID)
	if err != nil {
		s.logger.Error("GetPropertyReviews: failed to get average rating: %v", err)
		return nil, fmt.Errorf("%w: GetPropertyReviews - average rating: %v", ErrInternal, err)
	}

	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, fromDomainReview(r))
	}

	s.logger.Info("GetPropertyReviews: fetched %d reviews for property=%s", total, propertyID)
	return &PropertyReviewsResponse{
		PropertyID:    propertyID,
		AverageRating: avg,
		Total:         total,
		Reviews:       out,
	}, nil
}
