package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.PropertyID == "" {
		return fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDateRange проверяет порядок дат и длительность проживания
func validateDateRange(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}

	if domain.NightsBetween(checkIn, checkOut) > domain.MaxNights {
		return fmt.Errorf("%w: at most %d nights", ErrStayTooLong, domain.MaxNights)
	}

	return nil
}

// findConflicts возвращает бронирования, пересекающиеся с запрошенным
// диапазоном дат (полуинтервалы [checkIn, checkOut))
func findConflicts(checkIn, checkOut time.Time, bookings []*domain.Booking) []*domain.Booking {
	conflicts := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if !b.IsBlocking() {
			continue
		}
		if b.Overlaps(checkIn, checkOut) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
