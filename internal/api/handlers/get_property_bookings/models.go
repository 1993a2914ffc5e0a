package get_property_bookings

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/bookings/models"
)

// ParseQuery собирает запрос сервиса из query-параметров
func ParseQuery(userID, propertyID string, query url.Values) (*models.GetPropertyBookingsRequest, error) {
	req := &models.GetPropertyBookingsRequest{
		UserID:     userID,
		PropertyID: propertyID,
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
