package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     string    // ID гостя
	PropertyID string    // ID объекта размещения
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	Guests     int       // Число гостей
	Notes      *string   // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string    // ID созданного бронирования
	PropertyID string    // ID объекта
	UserID     string    // ID гостя
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	Nights     int       // Число ночей
	Guests     int       // Число гостей
	TotalPrice float64   // Итоговая цена (pricePerNight * nights)
	Status     string    // Статус бронирования

	// Денормализованные данные объекта
	PropertyTitle string
	PricePerNight float64
	HostID        string

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует доменное бронирование в ответ usecase
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        b.Nights(),
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PropertyTitle: b.PropertyTitle,
		PricePerNight: b.PricePerNight,
		HostID:        b.HostID,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
