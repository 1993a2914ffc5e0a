package favorites

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrFavoriteNotFound возвращается, когда объекта нет в избранном пользователя
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("favorites service: internal error")
)
