package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// UseCase use case проверки доступности дат объекта.
// Только чтение, побочных эффектов нет - повторный вызов с теми же
// аргументами без записей между ними дает тот же результат.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности дат.
//
// Пустой или инвертированный диапазон здесь не отклоняется - такой диапазон
// не пересекается ни с чем и вернет Available: true. Валидация порядка дат
// выполняется на шагах checkout и создания бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: property=%s, checkIn=%s, checkOut=%s",
		req.PropertyID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.PropertyID == "" {
		uc.logger.Warn("CheckAvailability: propertyID is required")
		return nil, fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		uc.logger.Warn("CheckAvailability: checkIn and checkOut are required")
		return nil, fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// 2. Получаем блокирующие бронирования объекта (pending/confirmed)
	filter := domain.PropertyBookingsFilter{
		PropertyID:   req.PropertyID,
		OnlyBlocking: true,
	}

	bookings, err := uc.bookingRepo.GetByPropertyWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Собираем пересечения (полуинтервалы [checkIn, checkOut))
	conflicting := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.Overlaps(req.CheckIn, req.CheckOut) {
			conflicting = append(conflicting, b)
		}
	}

	available := len(conflicting) == 0
	uc.logger.Info("CheckAvailability: property=%s available=%t, conflicts=%d",
		req.PropertyID, available, len(conflicting))

	return &Response{
		PropertyID: req.PropertyID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Available:  available,
		Conflicts:  fromDomainConflicts(conflicting),
	}, nil
}
