package check_availability

import (
	"github.com/m04kA/SMC-StayService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-StayService/internal/usecase/check_availability"
)

// ConflictResponse занятый диапазон дат в HTTP ответе
type ConflictResponse struct {
	ID       string `json:"id"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Status   string `json:"status"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	PropertyID string             `json:"propertyId"`
	CheckIn    string             `json:"checkIn"`
	CheckOut   string             `json:"checkOut"`
	Available  bool               `json:"available"`
	Conflicts  []ConflictResponse `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			ID:       c.ID,
			CheckIn:  c.CheckIn.Format(domain.DateFormat),
			CheckOut: c.CheckOut.Format(domain.DateFormat),
			Status:   c.Status,
		})
	}

	return &AvailabilityResponse{
		PropertyID: resp.PropertyID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Available:  resp.Available,
		Conflicts:  conflicts,
	}
}
