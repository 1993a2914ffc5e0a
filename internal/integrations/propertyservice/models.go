package propertyservice

// Property модель объекта размещения из PropertyService.
// Потребляется только на чтение - каталогом владеет PropertyService.
type Property struct {
	ID            string  `json:"id"`
	HostID        string  `json:"hostId"`
	Title         string  `json:"title"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxGuests     int     `json:"maxGuests"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
