package reviews

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByPropertyID(ctx context.Context, propertyID string) ([]*domain.Review, error)
	AverageRating(ctx context.Context, propertyID string) (float64, int, error)
}

// BookingRepository интерфейс репозитория бронирований
// (нужен для проверки завершенного проживания)
type BookingRepository interface {
	HasCompletedStay(ctx context.Context, userID, propertyID string) (bool, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID string) (*propertyservice.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
