package get_pricing_policy

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/pricingpolicy"
)

type PricingPolicyService interface {
	Get(ctx context.Context, propertyID string) (*pricingpolicy.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
