package domain

import "math"

// PricingBreakdown detailed stay price calculation. Derived, never persisted.
type PricingBreakdown struct {
	PricePerNight float64
	Nights        int
	Subtotal      float64
	ServiceFee    float64
	Taxes         float64
	Total         float64
}

// CalculatePricing computes the stay price breakdown with the platform
// default rates: 10% service fee, no taxes.
//
// Отрицательное число ночей интерпретируется как 0 - порядок дат обязан
// проверить вызывающий до того, как полагаться на ненулевую цену.
// guests принимается для будущего ценообразования за гостя и пока не
// участвует в формуле.
func CalculatePricing(pricePerNight float64, nights int, guests int) PricingBreakdown {
	return CalculatePricingWithRates(pricePerNight, nights, guests, DefaultServiceFeeRate, DefaultTaxRate)
}

// CalculatePricingWithRates computes the stay price breakdown with explicit
// service fee and tax rates (per-property pricing policy).
func CalculatePricingWithRates(pricePerNight float64, nights int, guests int, serviceFeeRate, taxRate float64) PricingBreakdown {
	_ = guests // reserved for per-guest pricing

	if nights < 0 {
		nights = 0
	}

	subtotal := pricePerNight * float64(nights)
	serviceFee := RoundToCents(subtotal * serviceFeeRate)
	taxes := RoundToCents(subtotal * taxRate)

	return PricingBreakdown{
		PricePerNight: pricePerNight,
		Nights:        nights,
		Subtotal:      subtotal,
		ServiceFee:    serviceFee,
		Taxes:         taxes,
		Total:         subtotal + serviceFee + taxes,
	}
}

// RoundToCents округляет до двух знаков по правилу round-half-up
func RoundToCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
