package add_favorite

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/favorites"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgPropertyNotFound = "объект размещения не найден"
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

// Handle POST /api/v1/properties/{propertyId}/favorite
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /properties/{id}/favorite - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Повторное добавление - не ошибка
	if err := h.service.Add(r.Context(), userID, propertyID); err != nil {
		switch {
		case errors.Is(err, favorites.ErrPropertyNotFound):
			h.logger.Warn("POST /properties/{id}/favorite - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		default:
			h.logger.Error("POST /properties/{id}/favorite - Failed to add favorite: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties/{id}/favorite - Favorite added: property_id=%s, user_id=%s",
		propertyID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
