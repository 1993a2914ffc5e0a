package get_checkout

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("get_checkout: property not found")

	// ErrInvalidDateRange возвращается, когда checkOut не позже checkIn
	ErrInvalidDateRange = errors.New("get_checkout: check-out must be after check-in")

	// ErrInvalidGuests возвращается, когда число гостей меньше единицы
	ErrInvalidGuests = errors.New("get_checkout: guests must be at least 1")

	// ErrCapacityExceeded возвращается, когда число гостей превышает вместимость объекта
	ErrCapacityExceeded = errors.New("get_checkout: guests exceed property capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_checkout: internal error")
)

// Ошибки валидации контактных данных
var (
	// ErrFullNameRequired возвращается при пустом имени
	ErrFullNameRequired = errors.New("get_checkout: full name is required")

	// ErrInvalidEmail возвращается при синтаксически некорректном email
	ErrInvalidEmail = errors.New("get_checkout: invalid email address")
)
