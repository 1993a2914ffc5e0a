package update_pricing_policy

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/pricingpolicy"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPropertyNotFound   = "объект размещения не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidRates       = "некорректные ставки ценовой политики"
)

// UpdatePolicyRequest HTTP request model
type UpdatePolicyRequest struct {
	ServiceFeeRate float64 `json:"serviceFeeRate"`
	TaxRate        float64 `json:"taxRate"`
}

type Handler struct {
	service PricingPolicyService
	logger  Logger
}

func NewHandler(service PricingPolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/properties/{propertyId}/pricing-policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /properties/{id}/pricing-policy - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /properties/{id}/pricing-policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &pricingpolicy.UpdatePolicyRequest{
		UserID:         userID,
		PropertyID:     propertyID,
		ServiceFeeRate: req.ServiceFeeRate,
		TaxRate:        req.TaxRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricingpolicy.ErrPropertyNotFound):
			h.logger.Warn("PUT /properties/{id}/pricing-policy - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, pricingpolicy.ErrAccessDenied):
			h.logger.Warn("PUT /properties/{id}/pricing-policy - Access denied: property_id=%s, user_id=%s",
				propertyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, pricingpolicy.ErrInvalidInput):
			h.logger.Warn("PUT /properties/{id}/pricing-policy - Invalid rates: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidRates)

		default:
			h.logger.Error("PUT /properties/{id}/pricing-policy - Failed to update policy: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /properties/{id}/pricing-policy - Policy updated: property_id=%s, user_id=%s",
		propertyID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
