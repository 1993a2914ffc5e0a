package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrInvalidDateRange возвращается, когда checkOut не позже checkIn
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrStayTooLong возвращается, когда длительность проживания превышает лимит
	ErrStayTooLong = errors.New("create_booking: stay is too long")

	// ErrCapacityExceeded возвращается, когда число гостей превышает вместимость объекта
	ErrCapacityExceeded = errors.New("create_booking: guests exceed property capacity")

	// ErrDatesConflict возвращается, когда запрошенные даты пересекаются
	// с существующим активным бронированием
	ErrDatesConflict = errors.New("create_booking: dates conflict with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
