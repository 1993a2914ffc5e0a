package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	reviewRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/review"
	"github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReviewRepo struct {
	reviews   []*domain.Review
	avg       float64
	total     int
	createErr error
	created   *domain.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *review
	stored.ID = "review-1"
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

func (f *fakeReviewRepo) GetByPropertyID(ctx context.Context, propertyID string) ([]*domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) AverageRating(ctx context.Context, propertyID string) (float64, int, error) {
	return f.avg, f.total, nil
}

type fakeBookingRepo struct {
	completedStay bool
}

func (f *fakeBookingRepo) HasCompletedStay(ctx context.Context, userID, propertyID string) (bool, error) {
	return f.completedStay, nil
}

type fakePropertyClient struct {
	err error
}

func (f *fakePropertyClient) GetProperty(ctx context.Context, propertyID string) (*propertyservice.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &propertyservice.Property{ID: propertyID, HostID: "host-1"}, nil
}

func validRequest() *CreateReviewRequest {
	return &CreateReviewRequest{
		UserID:     "guest-1",
		PropertyID: "prop-1",
		Rating:     5,
		Comment:    "Отличное место",
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, &fakeBookingRepo{completedStay: true}, &fakePropertyClient{}, nopLogger{})

	resp, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "review-1", resp.ID)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "Отличное место", resp.Comment)
}

func TestCreate_NoCompletedStay(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewService(repo, &fakeBookingRepo{completedStay: false}, &fakePropertyClient{}, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoCompletedStay)
	assert.Nil(t, repo.created)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &fakeReviewRepo{createErr: reviewRepo.ErrDuplicateReview}
	svc := NewService(repo, &fakeBookingRepo{completedStay: true}, &fakePropertyClient{}, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreate_PropertyNotFound(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeBookingRepo{completedStay: true},
		&fakePropertyClient{err: propertyservice.ErrPropertyNotFound}, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestCreate_InvalidRating(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeBookingRepo{completedStay: true}, &fakePropertyClient{}, nopLogger{})

	for _, rating := range []int{0, -1, 6} {
		req := validRequest()
		req.Rating = rating

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "rating=%d", rating)
	}
}

func TestCreate_CommentTooLong(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeBookingRepo{completedStay: true}, &fakePropertyClient{}, nopLogger{})

	req := validRequest()
	req.Comment = strings.Repeat("x", domain.MaxCommentLength+1)

	_, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPropertyReviews(t *testing.T) {
	repo := &fakeReviewRepo{
		reviews: []*domain.Review{
			{ID: "r1", PropertyID: "prop-1", UserID: "u1", Rating: 5},
			{ID: "r2", PropertyID: "prop-1", UserID: "u2", Rating: 4},
		},
		avg:   4.5,
		total: 2,
	}
	svc := NewService(repo, &fakeBookingRepo{}, &fakePropertyClient{}, nopLogger{})

	resp, err := svc.GetPropertyReviews(context.Background(), "prop-1")

	require.NoError(t, err)
	assert.Equal(t, 4.5, resp.AverageRating)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Reviews, 2)
}

func TestGetPropertyReviews_Empty(t *testing.T) {
	svc := NewService(&fakeReviewRepo{}, &fakeBookingRepo{}, &fakePropertyClient{}, nopLogger{})

	resp, err := svc.GetPropertyReviews(context.Background(), "prop-1")

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.AverageRating)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Reviews)
}
