package pricingpolicy

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

// PolicyRepository интерфейс репозитория ценовых политик
type PolicyRepository interface {
	GetByPropertyID(ctx context.Context, propertyID string) (*domain.PricingPolicy, error)
	Upsert(ctx context.Context, policy *domain.PricingPolicy) (*domain.PricingPolicy, error)
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
