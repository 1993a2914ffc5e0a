package reviews

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrNoCompletedStay возвращается, когда у пользователя нет завершенного
	// проживания на объекте
	ErrNoCompletedStay = errors.New("user has no completed stay at this property")

	// ErrAlreadyReviewed возвращается при повторном отзыве на объект
	ErrAlreadyReviewed = errors.New("user already reviewed this property")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews service: internal error")
)
