package domain

import "time"

// PricingPolicy represents fee and tax rates applied at checkout.
// A property without its own policy row uses the platform defaults.
type PricingPolicy struct {
	ID             string
	PropertyID     string
	ServiceFeeRate float64
	TaxRate        float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DefaultPricingPolicy возвращает платформенную политику по умолчанию
// (10% сервисный сбор, налоги отключены)
func DefaultPricingPolicy(propertyID string) *PricingPolicy {
	return &PricingPolicy{
		PropertyID:     propertyID,
		ServiceFeeRate: DefaultServiceFeeRate,
		TaxRate:        DefaultTaxRate,
	}
}

// IsDefault returns true if the policy carries the platform default rates
func (p *PricingPolicy) IsDefault() bool {
	return p.ServiceFeeRate == DefaultServiceFeeRate && p.TaxRate == DefaultTaxRate
}
