package get_checkout

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/domain"
	getCheckout "github.com/m04kA/SMC-StayService/internal/usecase/get_checkout"
)

const (
	msgMissingParams    = "параметры checkIn, checkOut и guests обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGuests    = "некорректное число гостей"
	msgInvalidDateRange = "дата выезда должна быть позже даты заезда"
	msgPropertyNotFound = "объект размещения не найден"
	msgCapacityExceeded = "число гостей превышает вместимость объекта"
)

type Handler struct {
	useCase GetCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase GetCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/checkout?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD&guests=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID := vars["propertyId"]

	query := r.URL.Query()
	checkInStr := query.Get("checkIn")
	checkOutStr := query.Get("checkOut")
	guestsStr := query.Get("guests")

	if checkInStr == "" || checkOutStr == "" || guestsStr == "" {
		h.logger.Warn("GET /properties/{id}/checkout - Missing params: property_id=%s", propertyID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/checkout - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/checkout - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	guests, err := strconv.Atoi(guestsStr)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/checkout - Invalid guests: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCheckout.Request{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCheckout.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/checkout - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getCheckout.ErrInvalidDateRange):
			h.logger.Warn("GET /properties/{id}/checkout - Invalid date range: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getCheckout.ErrInvalidGuests):
			h.logger.Warn("GET /properties/{id}/checkout - Invalid guests: property_id=%s, guests=%d", propertyID, guests)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, getCheckout.ErrCapacityExceeded):
			h.logger.Warn("GET /properties/{id}/checkout - Capacity exceeded: property_id=%s, guests=%d", propertyID, guests)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		default:
			h.logger.Error("GET /properties/{id}/checkout - Failed to build checkout: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/checkout - Checkout built: property_id=%s, nights=%d, total=%.2f",
		propertyID, result.Pricing.Nights, result.Pricing.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
