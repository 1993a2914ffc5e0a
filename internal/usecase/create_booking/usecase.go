package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	propertyClient "github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	propertyClient PropertyServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyClient PropertyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		propertyClient: propertyClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка доступности дат и вставка выполняются в одной сериализуемой
// транзакции с блокировкой активных бронирований объекта (FOR UPDATE) -
// два параллельных запроса на пересекающиеся даты не могут оба пройти
// проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, property=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.UserID, req.PropertyID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация диапазона дат
	if err := validateDateRange(req.CheckIn, req.CheckOut); err != nil {
		uc.logger.Warn("CreateBooking: date range validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем объект размещения
	property, err := uc.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Проверяем вместимость объекта
	if req.Guests > property.MaxGuests {
		uc.logger.Warn("CreateBooking: guests=%d exceed capacity=%d for property=%s",
			req.Guests, property.MaxGuests, req.PropertyID)
		return nil, fmt.Errorf("%w: property accommodates at most %d guests", ErrCapacityExceeded, property.MaxGuests)
	}

	// 5. Считаем ночи и итоговую цену.
	// Фиксируем pricePerNight * nights - сервисный сбор в сохраняемую цену
	// не входит, он виден только в checkout-расчете (см. DESIGN.md).
	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)
	totalPrice := property.PricePerNight * float64(nights)

	var result *domain.Booking

	// 6. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Блокирующие бронирования объекта на пересекающийся период (FOR UPDATE)
		filter := domain.PropertyBookingsFilter{
			PropertyID:   req.PropertyID,
			StartDate:    &req.CheckIn,
			EndDate:      &req.CheckOut,
			OnlyBlocking: true,
		}

		bookings, err := uc.bookingRepo.GetByPropertyWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем пересечение дат
		if conflicts := findConflicts(req.CheckIn, req.CheckOut, bookings); len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: dates not available for property=%s, %d conflicting bookings",
				req.PropertyID, len(conflicts))
			return ErrDatesConflict
		}

		// 6.3. Создаем бронирование с денормализацией данных объекта.
		// Статус сразу confirmed - подтверждения хостом в этом флоу нет.
		booking := &domain.Booking{
			PropertyID: req.PropertyID,
			UserID:     req.UserID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Guests:     req.Guests,
			TotalPrice: totalPrice,
			Status:     domain.StatusConfirmed,
			// Денормализация данных объекта
			PropertyTitle: property.Title,
			PricePerNight: property.PricePerNight,
			HostID:        property.HostID,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f for %d nights",
		result.ID, result.TotalPrice, nights)

	return fromDomain(result), nil
}
