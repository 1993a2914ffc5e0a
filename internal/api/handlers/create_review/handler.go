package create_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPropertyNotFound   = "объект размещения не найден"
	msgNoCompletedStay    = "отзыв доступен только после завершенного проживания"
	msgAlreadyReviewed    = "отзыв на этот объект уже оставлен"
	msgInvalidInput       = "некорректные данные отзыва"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

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

// Handle POST /api/v1/properties/{propertyId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /properties/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &reviews.CreateReviewRequest{
		UserID:     userID,
		PropertyID: propertyID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrPropertyNotFound):
			h.logger.Warn("POST /properties/{id}/reviews - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, reviews.ErrNoCompletedStay):
			h.logger.Warn("POST /properties/{id}/reviews - No completed stay: property_id=%s, user_id=%s",
				propertyID, userID)
			handlers.RespondForbidden(w, msgNoCompletedStay)

		case errors.Is(err, reviews.ErrAlreadyReviewed):
			h.logger.Warn("POST /properties/{id}/reviews - Already reviewed: property_id=%s, user_id=%s",
				propertyID, userID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReviewed)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /properties/{id}/reviews - Invalid input: property_id=%s, user_id=%s",
				propertyID, userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /properties/{id}/reviews - Failed to create review: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties/{id}/reviews - Review created successfully: review_id=%s, property_id=%s, user_id=%s",
		result.ID, propertyID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
