package get_pricing_policy

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
)

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

// Handle GET /api/v1/properties/{propertyId}/pricing-policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	result, err := h.service.Get(r.Context(), propertyID)
	if err != nil {
		h.logger.Error("GET /properties/{id}/pricing-policy - Failed to get policy: property_id=%s, error=%v",
			propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties/{id}/pricing-policy - Policy retrieved: property_id=%s, default=%t",
		propertyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
