package validate_checkout

import (
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	getCheckout "github.com/m04kA/SMC-StayService/internal/usecase/get_checkout"
)

const msgInvalidRequestBody = "некорректное тело запроса"

// ValidateContactRequest HTTP request model
type ValidateContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ValidateContactResponse HTTP response model
type ValidateContactResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /api/v1/checkout/validate
//
// Клиентская форма checkout дергает этот endpoint перед созданием
// бронирования. Некорректные контакты - это не ошибка HTTP, а валидный
// ответ с valid=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := getCheckout.ValidateContact(getCheckout.ContactInfo{
		FullName: req.FullName,
		Email:    req.Email,
	})

	h.logger.Info("POST /checkout/validate - Contact validated: valid=%t", result.Valid)
	handlers.RespondJSON(w, http.StatusOK, ValidateContactResponse{
		Valid: result.Valid,
		Error: result.Error,
	})
}
