package get_checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// emailPattern синтаксическая проверка email: непустая локальная часть,
// @, домен с точкой, без пробелов
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID == "" {
		return fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return ErrInvalidDateRange
	}

	if req.Guests < domain.MinGuests {
		return ErrInvalidGuests
	}

	return nil
}

// ValidateContact проверяет контактные данные с формы checkout:
// непустое полное имя и синтаксически корректный email.
// Независимая проверка, с расчетом цены не связана.
func ValidateContact(info ContactInfo) ContactValidationResult {
	if strings.TrimSpace(info.FullName) == "" {
		return ContactValidationResult{Valid: false, Error: "full name is required"}
	}

	if !emailPattern.MatchString(strings.TrimSpace(info.Email)) {
		return ContactValidationResult{Valid: false, Error: "invalid email address"}
	}

	return ContactValidationResult{Valid: true}
}
