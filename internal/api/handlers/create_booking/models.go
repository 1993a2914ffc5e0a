package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	createBooking "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID string  `json:"propertyId"`
	CheckIn    string  `json:"checkIn"`  // "2026-07-01"
	CheckOut   string  `json:"checkOut"` // "2026-07-04"
	Guests     int     `json:"guests"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"propertyId"`
	UserID        string  `json:"userId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Nights        int     `json:"nights"`
	Guests        int     `json:"guests"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PropertyTitle string  `json:"propertyTitle"`
	PricePerNight float64 `json:"pricePerNight"`
	HostID        string  `json:"hostId"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		PropertyID:    resp.PropertyID,
		UserID:        resp.UserID,
		CheckIn:       resp.CheckIn.Format(domain.DateFormat),
		CheckOut:      resp.CheckOut.Format(domain.DateFormat),
		Nights:        resp.Nights,
		Guests:        resp.Guests,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		PropertyTitle: resp.PropertyTitle,
		PricePerNight: resp.PricePerNight,
		HostID:        resp.HostID,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
