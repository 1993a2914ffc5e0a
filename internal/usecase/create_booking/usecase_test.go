package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	existing    []*domain.Booking
	getErr      error
	createErr   error
	created     *domain.Booking
	createCalls int
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *booking
	stored.ID = "booking-1"
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

type fakePropertyClient struct {
	property *propertyservice.Property
	err      error
}

func (f *fakePropertyClient) GetProperty(ctx context.Context, propertyID string) (*propertyservice.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.property, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testProperty() *propertyservice.Property {
	return &propertyservice.Property{
		ID:            "prop-1",
		HostID:        "host-1",
		Title:         "Квартира у моря",
		PricePerNight: 100,
		MaxGuests:     4,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:     "user-1",
		PropertyID: "prop-1",
		CheckIn:    date(2026, time.July, 1),
		CheckOut:   date(2026, time.July, 4),
		Guests:     2,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, 3, resp.Nights)
	// Сохраняется pricePerNight * nights, без сервисного сбора
	assert.Equal(t, 300.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Квартира у моря", resp.PropertyTitle)
	assert.Equal(t, 100.0, resp.PricePerNight)
	assert.Equal(t, "host-1", resp.HostID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_DatesConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:       "existing-1",
				CheckIn:  date(2026, time.July, 3),
				CheckOut: date(2026, time.July, 6),
				Status:   domain.StatusConfirmed,
			},
		},
	}
	uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDatesConflict)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_BoundaryTouchIsNotConflict(t *testing.T) {
	// Существующее бронирование заканчивается в день заезда нового -
	// полуинтервалы не пересекаются
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:       "existing-1",
				CheckIn:  date(2026, time.June, 28),
				CheckOut: date(2026, time.July, 1),
				Status:   domain.StatusConfirmed,
			},
		},
	}
	uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, 300.0, resp.TotalPrice)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:       "existing-1",
				CheckIn:  date(2026, time.July, 2),
				CheckOut: date(2026, time.July, 5),
				Status:   domain.StatusCancelled,
			},
		},
	}
	uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.Guests = 5

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	// Ничего не сохранено
	assert.Equal(t, 0, repo.createCalls)
	assert.Nil(t, repo.created)
}

func TestExecute_PropertyNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakePropertyClient{err: propertyservice.ErrPropertyNotFound}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_InvalidDateRange(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{
			name:     "same day",
			checkIn:  date(2026, time.July, 1),
			checkOut: date(2026, time.July, 1),
		},
		{
			name:     "inverted range",
			checkIn:  date(2026, time.July, 4),
			checkOut: date(2026, time.July, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

			req := validRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidDateRange)
			assert.Equal(t, 0, repo.createCalls)
		})
	}
}

func TestExecute_StayTooLong(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.CheckIn = date(2026, time.January, 1)
	req.CheckOut = req.CheckIn.AddDate(0, 0, domain.MaxNights+1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStayTooLong)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(req *Request)
	}{
		{name: "empty userID", modify: func(req *Request) { req.UserID = "" }},
		{name: "empty propertyID", modify: func(req *Request) { req.PropertyID = "" }},
		{name: "zero checkIn", modify: func(req *Request) { req.CheckIn = time.Time{} }},
		{name: "zero guests", modify: func(req *Request) { req.Guests = 0 }},
		{name: "notes too long", modify: func(req *Request) {
			req.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{getErr: errors.New("connection refused")}
	uc := NewUseCase(repo, &fakePropertyClient{property: testProperty()}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
