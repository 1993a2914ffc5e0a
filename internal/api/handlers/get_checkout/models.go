package get_checkout

import (
	"github.com/m04kA/SMC-StayService/internal/domain"
	getCheckout "github.com/m04kA/SMC-StayService/internal/usecase/get_checkout"
)

// PropertySummaryResponse данные объекта в checkout-сводке
type PropertySummaryResponse struct {
	ID            string  `json:"id"`
	HostID        string  `json:"hostId"`
	Title         string  `json:"title"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxGuests     int     `json:"maxGuests"`
}

// PricingResponse детальный расчет цены
type PricingResponse struct {
	PricePerNight float64 `json:"pricePerNight"`
	Nights        int     `json:"nights"`
	Subtotal      float64 `json:"subtotal"`
	ServiceFee    float64 `json:"serviceFee"`
	Taxes         float64 `json:"taxes"`
	Total         float64 `json:"total"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	Property PropertySummaryResponse `json:"property"`
	CheckIn  string                  `json:"checkIn"`
	CheckOut string                  `json:"checkOut"`
	Guests   int                     `json:"guests"`
	Pricing  PricingResponse         `json:"pricing"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		Property: PropertySummaryResponse{
			ID:            resp.Property.ID,
			HostID:        resp.Property.HostID,
			Title:         resp.Property.Title,
			PricePerNight: resp.Property.PricePerNight,
			MaxGuests:     resp.Property.MaxGuests,
		},
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Guests:   resp.Guests,
		Pricing: PricingResponse{
			PricePerNight: resp.Pricing.PricePerNight,
			Nights:        resp.Pricing.Nights,
			Subtotal:      resp.Pricing.Subtotal,
			ServiceFee:    resp.Pricing.ServiceFee,
			Taxes:         resp.Pricing.Taxes,
			Total:         resp.Pricing.Total,
		},
	}
}
