package remove_favorite

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/favorites"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "объект не найден в избранном"
)

type Handler struct {
	service FavoriteService
	logger  Logger
}

func NewHandler(service FavoriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/properties/{propertyId}/favorite
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /properties/{id}/favorite - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Remove(r.Context(), userID, propertyID); err != nil {
		switch {
		case errors.Is(err, favorites.ErrFavoriteNotFound):
			h.logger.Warn("DELETE /properties/{id}/favorite - Not in favorites: property_id=%s, user_id=%s",
				propertyID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /properties/{id}/favorite - Failed to remove favorite: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /properties/{id}/favorite - Favorite removed: property_id=%s, user_id=%s",
		propertyID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
