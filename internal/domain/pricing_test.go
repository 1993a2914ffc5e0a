package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePricing(t *testing.T) {
	tests := []struct {
		name          string
		pricePerNight float64
		nights        int
		guests        int
		wantSubtotal  float64
		wantFee       float64
		wantTotal     float64
	}{
		{
			name:          "two nights at 50",
			pricePerNight: 50,
			nights:        2,
			guests:        2,
			wantSubtotal:  100,
			wantFee:       10,
			wantTotal:     110,
		},
		{
			name:          "three nights at 100",
			pricePerNight: 100,
			nights:        3,
			guests:        2,
			wantSubtotal:  300,
			wantFee:       30,
			wantTotal:     330,
		},
		{
			name:          "zero nights",
			pricePerNight: 100,
			nights:        0,
			guests:        1,
			wantSubtotal:  0,
			wantFee:       0,
			wantTotal:     0,
		},
		{
			name:          "negative nights clamped to zero",
			pricePerNight: 100,
			nights:        -3,
			guests:        1,
			wantSubtotal:  0,
			wantFee:       0,
			wantTotal:     0,
		},
		{
			name:          "fee rounded half-up to cents",
			pricePerNight: 33.33,
			nights:        1,
			guests:        1,
			wantSubtotal:  33.33,
			wantFee:       3.33, // 3.333 -> 3.33
			wantTotal:     36.66,
		},
		{
			name:          "fee exactly on half cent rounds up",
			pricePerNight: 20.45,
			nights:        1,
			guests:        1,
			wantSubtotal:  20.45,
			wantFee:       2.05, // 2.045 -> 2.05
			wantTotal:     22.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePricing(tt.pricePerNight, tt.nights, tt.guests)

			assert.Equal(t, tt.pricePerNight, got.PricePerNight)
			assert.InDelta(t, tt.wantSubtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantFee, got.ServiceFee, 1e-9)
			assert.InDelta(t, 0.0, got.Taxes, 1e-9)
			assert.InDelta(t, tt.wantTotal, got.Total, 1e-9)
		})
	}
}

func TestCalculatePricing_TotalIdentity(t *testing.T) {
	// total == subtotal + serviceFee + taxes для любого числа ночей
	for nights := 0; nights <= 30; nights++ {
		got := CalculatePricing(87.65, nights, 3)
		assert.InDelta(t, got.Subtotal+got.ServiceFee+got.Taxes, got.Total, 1e-9,
			"nights=%d", nights)
	}
}

func TestCalculatePricingWithRates(t *testing.T) {
	got := CalculatePricingWithRates(100, 2, 2, 0.15, 0.08)

	assert.InDelta(t, 200.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 30.0, got.ServiceFee, 1e-9)
	assert.InDelta(t, 16.0, got.Taxes, 1e-9)
	assert.InDelta(t, 246.0, got.Total, 1e-9)
}

func TestCalculatePricing_GuestsInert(t *testing.T) {
	// guests зарезервирован и не влияет на цену
	one := CalculatePricing(120, 4, 1)
	many := CalculatePricing(120, 4, 16)

	assert.Equal(t, one, many)
}

func TestNightsBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three full nights", day(1), day(4), 3},
		{"single night", day(1), day(2), 1},
		{"same day", day(5), day(5), 0},
		{"inverted range", day(7), day(3), 0},
		{"partial day rounds up", day(1), day(2).Add(6 * time.Hour), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}
