package pricingpolicy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	policyRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricingpolicy"
	propertyClient "github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
)

// UpdatePolicyRequest запрос на обновление ценовой политики объекта
type UpdatePolicyRequest struct {
	UserID         string  `json:"userId"`
	PropertyID     string  `json:"propertyId"`
	ServiceFeeRate float64 `json:"serviceFeeRate"`
	TaxRate        float64 `json:"taxRate"`
}

// PolicyResponse ценовая политика в ответе сервиса
type PolicyResponse struct {
	PropertyID     string     `json:"propertyId"`
	ServiceFeeRate float64    `json:"serviceFeeRate"`
	TaxRate        float64    `json:"taxRate"`
	IsDefault      bool       `json:"isDefault"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// Service сервис для работы с ценовыми политиками объектов
type Service struct {
	policyRepo     PolicyRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса ценовых политик
func NewService(
	policyRepo PolicyRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		policyRepo:     policyRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// Get возвращает ценовую политику объекта; без своей строки - платформенные
// значения по умолчанию
func (s *Service) Get(ctx context.Context, propertyID string) (*PolicyResponse, error) {
	s.logger.Info("GetPolicy: fetching pricing policy for property=%s", propertyID)

	policy, err := s.policyRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			def := domain.DefaultPricingPolicy(propertyID)
			return &PolicyResponse{
				PropertyID:     propertyID,
				ServiceFeeRate: def.ServiceFeeRate,
				TaxRate:        def.TaxRate,
				IsDefault:      true,
			}, nil
		}
		s.logger.Error("GetPolicy: repository error for property=%s: %v", propertyID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return &PolicyResponse{
		PropertyID:     policy.PropertyID,
		ServiceFeeRate: policy.ServiceFeeRate,
		TaxRate:        policy.TaxRate,
		IsDefault:      policy.IsDefault(),
		UpdatedAt:      &policy.UpdatedAt,
	}, nil
}

// Update создает или обновляет ценовую политику объекта.
// Доступно только хосту объекта.
func (s *Service) Update(ctx context.Context, req *UpdatePolicyRequest) (*PolicyResponse, error) {
	s.logger.Info("UpdatePolicy: property=%s, user=%s, fee=%.4f, tax=%.4f",
		req.PropertyID, req.UserID, req.ServiceFeeRate, req.TaxRate)

	if req.ServiceFeeRate < 0 || req.ServiceFeeRate > domain.MaxServiceFeeRate {
		return nil, fmt.Errorf("%w: serviceFeeRate must be in [0, %.2f]", ErrInvalidInput, domain.MaxServiceFeeRate)
	}
	if req.TaxRate < 0 || req.TaxRate > domain.MaxTaxRate {
		return nil, fmt.Errorf("%w: taxRate must be in [0, %.2f]", ErrInvalidInput, domain.MaxTaxRate)
	}

	property, err := s.propertyClient.GetProperty(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("UpdatePolicy: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("UpdatePolicy: failed to get property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	if property.HostID != req.UserID {
		s.logger.Warn("UpdatePolicy: user=%s is not the host of property=%s", req.UserID, req.PropertyID)
		return nil, ErrAccessDenied
	}

	updated, err := s.policyRepo.Upsert(ctx, &domain.PricingPolicy{
		PropertyID:     req.PropertyID,
		ServiceFeeRate: req.ServiceFeeRate,
		TaxRate:        req.TaxRate,
	})
	if err != nil {
		s.logger.Error("UpdatePolicy: repository error for property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePolicy: policy for property=%s updated", req.PropertyID)
	return &PolicyResponse{
		PropertyID:     updated.PropertyID,
		ServiceFeeRate: updated.ServiceFeeRate,
		TaxRate:        updated.TaxRate,
		IsDefault:      updated.IsDefault(),
		UpdatedAt:      &updated.UpdatedAt,
	}, nil
}
