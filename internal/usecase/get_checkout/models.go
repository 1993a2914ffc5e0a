package get_checkout

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модель запроса checkout-расчета
type Request struct {
	PropertyID string    // ID объекта размещения
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	Guests     int       // Число гостей
}

// PropertySummary данные объекта для checkout-страницы
type PropertySummary struct {
	ID            string
	HostID        string
	Title         string
	PricePerNight float64
	MaxGuests     int
}

// Response checkout-сводка: объект, даты, гости и детальный расчет цены.
// Ничего не резервирует и не сохраняет.
type Response struct {
	Property PropertySummary
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Pricing  domain.PricingBreakdown
}

// ContactInfo контактные данные гостя с формы checkout
type ContactInfo struct {
	FullName string
	Email    string
}

// ContactValidationResult результат валидации контактных данных
type ContactValidationResult struct {
	Valid bool
	Error string
}
