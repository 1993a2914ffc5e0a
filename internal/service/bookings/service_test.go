package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
	"github.com/m04kA/SMC-StayService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	byID map[string]*domain.Booking

	cancelled       map[string]string
	updatedStatuses map[string]domain.BookingStatus
	userBookings    []*domain.Booking
	filterBookings  []*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{
		byID:            make(map[string]*domain.Booking),
		cancelled:       make(map[string]string),
		updatedStatuses: make(map[string]domain.BookingStatus),
	}
	for _, b := range bookings {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.userBookings, nil
}

func (f *fakeBookingRepo) GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error) {
	return f.filterBookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatuses[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id string, reason string) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	f.cancelled[id] = reason
	return nil
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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         "booking-1",
		PropertyID: "prop-1",
		UserID:     "guest-1",
		HostID:     "host-1",
		CheckIn:    date(2026, time.July, 1),
		CheckOut:   date(2026, time.July, 4),
		Guests:     2,
		TotalPrice: 300,
		Status:     domain.StatusConfirmed,
	}
}

func newService(repo *fakeBookingRepo) *Service {
	return NewService(repo, &fakePropertyClient{}, nopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr error
	}{
		{name: "guest can view", userID: "guest-1"},
		{name: "host can view", userID: "host-1"},
		{name: "stranger denied", userID: "stranger", wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(newFakeBookingRepo(confirmedBooking()))

			resp, err := svc.GetByID(context.Background(), "booking-1", tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "booking-1", resp.ID)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(newFakeBookingRepo())

	_, err := svc.GetByID(context.Background(), "missing", "guest-1")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ByGuest(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newService(repo)

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
		UserID:             "guest-1",
		CancellationReason: "планы изменились",
	})

	require.NoError(t, err)
	assert.Equal(t, "планы изменились", repo.cancelled["booking-1"])
	assert.Equal(t, domain.StatusCancelled, repo.byID["booking-1"].Status)
}

func TestCancel_ByHost(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newService(repo)

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
		UserID: "host-1",
	})

	require.NoError(t, err)
}

func TestCancel_DoubleCancel(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newService(repo)

	req := &models.CancelBookingRequest{UserID: "guest-1"}

	require.NoError(t, svc.Cancel(context.Background(), "booking-1", req))

	// Повторная отмена отклоняется - бронирование уже cancelled
	err := svc.Cancel(context.Background(), "booking-1", req)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_CompletedBooking(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusCompleted
	svc := newService(newFakeBookingRepo(b))

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "guest-1"})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newService(repo)

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "stranger"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestUpdateStatus_HostOnly(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking())
	svc := newService(repo)

	err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		UserID: "guest-1",
		Status: "completed",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "confirmed to cancelled", from: domain.StatusConfirmed, to: "cancelled"},
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "pending to completed rejected", from: domain.StatusPending, to: "completed", wantErr: ErrInvalidTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "cancelled", wantErr: ErrInvalidTransition},
		{name: "cancelled is terminal", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "self transition rejected", from: domain.StatusConfirmed, to: "confirmed", wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := confirmedBooking()
			b.Status = tt.from
			repo := newFakeBookingRepo(b)
			svc := newService(repo)

			err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
				UserID: "host-1",
				Status: tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updatedStatuses)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.updatedStatuses["booking-1"])
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := newService(newFakeBookingRepo(confirmedBooking()))

	err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{
		UserID: "host-1",
		Status: "archived",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPropertyBookings_HostAccess(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.filterBookings = []*domain.Booking{confirmedBooking()}
	svc := NewService(repo, &fakePropertyClient{property: &propertyservice.Property{
		ID:     "prop-1",
		HostID: "host-1",
	}}, nopLogger{})

	resp, err := svc.GetPropertyBookings(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     "host-1",
		PropertyID: "prop-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetPropertyBookings_NotHost(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, &fakePropertyClient{property: &propertyservice.Property{
		ID:     "prop-1",
		HostID: "host-1",
	}}, nopLogger{})

	_, err := svc.GetPropertyBookings(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     "guest-1",
		PropertyID: "prop-1",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetPropertyBookings_PropertyNotFound(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, &fakePropertyClient{err: propertyservice.ErrPropertyNotFound}, nopLogger{})

	_, err := svc.GetPropertyBookings(context.Background(), &models.GetPropertyBookingsRequest{
		UserID:     "host-1",
		PropertyID: "prop-1",
	})

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestGetUserBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.userBookings = []*domain.Booking{confirmedBooking()}
	svc := newService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "guest-1"})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)
}

func TestGetUserBookings_InvalidStatusFilter(t *testing.T) {
	svc := newService(newFakeBookingRepo())

	bad := "archived"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "guest-1",
		Status: &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
