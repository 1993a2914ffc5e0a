package check_availability

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модель запроса проверки доступности дат
type Request struct {
	PropertyID string    // ID объекта размещения
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
}

// ConflictingBooking занятый диапазон дат, мешающий запрошенному
type ConflictingBooking struct {
	ID       string
	CheckIn  time.Time
	CheckOut time.Time
	Status   string
}

// Response модель ответа проверки доступности
type Response struct {
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Available  bool
	Conflicts  []ConflictingBooking
}

// fromDomainConflicts конвертирует пересекающиеся бронирования в ответ
func fromDomainConflicts(bookings []*domain.Booking) []ConflictingBooking {
	conflicts := make([]ConflictingBooking, 0, len(bookings))
	for _, b := range bookings {
		conflicts = append(conflicts, ConflictingBooking{
			ID:       b.ID,
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
			Status:   string(b.Status),
		})
	}
	return conflicts
}
