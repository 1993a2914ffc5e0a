package get_property_reviews

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	result, err := h.service.GetPropertyReviews(r.Context(), propertyID)
	if err != nil {
		h.logger.Error("GET /properties/{id}/reviews - Failed to get reviews: property_id=%s, error=%v",
			propertyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /properties/{id}/reviews - Retrieved %d reviews: property_id=%s",
		result.Total, propertyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
