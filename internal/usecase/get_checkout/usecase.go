package get_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	propertyClient "github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
	policyRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricingpolicy"
)

// UseCase use case checkout-расчета: поиск объекта, валидация дат и гостей,
// расчет цены. Чистое чтение - ничего не бронирует и не удерживает даты,
// гонка между двумя checkout на одни даты разрешается на шаге создания
// бронирования.
type UseCase struct {
	propertyClient PropertyServiceClient
	policyRepo     PricingPolicyRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyClient PropertyServiceClient,
	policyRepo PricingPolicyRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyClient: propertyClient,
		policyRepo:     policyRepo,
		logger:         logger,
	}
}

// Execute выполняет checkout-расчет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCheckout: property=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.PropertyID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных (порядок дат, число гостей)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCheckout: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект размещения
	property, err := uc.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			uc.logger.Warn("GetCheckout: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetCheckout: failed to get property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Проверяем вместимость объекта
	if req.Guests > property.MaxGuests {
		uc.logger.Warn("GetCheckout: guests=%d exceed capacity=%d for property=%s",
			req.Guests, property.MaxGuests, req.PropertyID)
		return nil, fmt.Errorf("%w: property accommodates at most %d guests", ErrCapacityExceeded, property.MaxGuests)
	}

	// 4. Получаем ценовую политику объекта.
	// Отсутствие своей политики - штатный случай, берем платформенные
	// значения по умолчанию (10% сбор, налоги 0).
	policy, err := uc.policyRepo.GetByPropertyID(ctx, req.PropertyID)
	if err != nil {
		if !errors.Is(err, policyRepo.ErrPolicyNotFound) {
			uc.logger.Error("GetCheckout: failed to get pricing policy: %v", err)
			return nil, fmt.Errorf("%w: failed to get pricing policy: %v", ErrInternal, err)
		}
		policy = domain.DefaultPricingPolicy(req.PropertyID)
	}

	// 5. Считаем ночи и детальную цену
	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)
	pricing := domain.CalculatePricingWithRates(
		property.PricePerNight, nights, req.Guests,
		policy.ServiceFeeRate, policy.TaxRate,
	)

	uc.logger.Info("GetCheckout: property=%s nights=%d subtotal=%.2f fee=%.2f taxes=%.2f total=%.2f",
		req.PropertyID, nights, pricing.Subtotal, pricing.ServiceFee, pricing.Taxes, pricing.Total)

	return &Response{
		Property: PropertySummary{
			ID:            property.ID,
			HostID:        property.HostID,
			Title:         property.Title,
			PricePerNight: property.PricePerNight,
			MaxGuests:     property.MaxGuests,
		},
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
		Pricing:  pricing,
	}, nil
}
