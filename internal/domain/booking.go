package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValidStatus reports whether s is one of the known booking statuses
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// transitions допустимые переходы статусов бронирования.
// Терминальные статусы (cancelled, completed) переходов не имеют.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition reports whether a booking may move from one status to another
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Booking represents a property stay reservation
type Booking struct {
	ID         string
	PropertyID string
	UserID     string

	CheckIn  time.Time
	CheckOut time.Time
	Guests   int

	// TotalPrice фиксируется на момент создания: pricePerNight * nights
	// (без сервисного сбора, см. DESIGN.md)
	TotalPrice float64
	Status     BookingStatus

	// Denormalized property data for history
	PropertyTitle string
	PricePerNight float64
	HostID        string

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights covered by the booking
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// IsBlocking returns true if the booking blocks its date range for other guests
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps reports whether the booking's [CheckIn, CheckOut) range shares
// at least one night with [checkIn, checkOut). Half-open intervals: a stay
// ending on the day another begins does not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}

// NightsBetween возвращает число ночей между датами: ceil(Δ / 24h).
// Инвертированный или нулевой диапазон дает 0 (валидация порядка дат -
// ответственность вызывающего).
func NightsBetween(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// PropertyBookingsFilter фильтр для получения бронирований объекта
type PropertyBookingsFilter struct {
	PropertyID      string         // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	OnlyBlocking    bool           // Только бронирования, блокирующие даты (pending/confirmed)
	IncludeInactive bool           // Включать ли отмененные и завершенные
}
