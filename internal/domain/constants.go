package domain

// Default pricing policy values
const (
	DefaultServiceFeeRate = 0.10 // 10% platform commission
	DefaultTaxRate        = 0.0  // tax hook, inert until a jurisdiction policy is set
)

// Business validation constants
const (
	MinGuests                   = 1
	MinNights                   = 1
	MaxNights                   = 365 // 1 year
	MinRating                   = 1
	MaxRating                   = 5
	MaxCommentLength            = 2000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxServiceFeeRate           = 0.5
	MaxTaxRate                  = 0.5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, при которых бронирование блокирует даты объекта.
// Используется при проверке доступности диапазона дат.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, при которых бронирование не блокирует даты
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}
