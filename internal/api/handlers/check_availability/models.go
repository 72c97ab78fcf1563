package check_availability

import (
	"strings"

	"github.com/m04kA/SMC-DomesBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-DomesBooking/internal/usecase/check_availability"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	CheckIn  string               `json:"checkIn"`  // "2026-02-12"
	CheckOut string               `json:"checkOut"` // "2026-02-14"
	Guests   *handlers.GuestCount `json:"guests,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	OK             bool   `json:"ok"`
	Available      bool   `json:"available"`
	AvailableDomes int    `json:"availableDomes"`
	TotalDomes     int    `json:"totalDomes"`
	Currency       string `json:"currency"`
	NightlyRate    int64  `json:"nightlyRate"`
	Nights         int    `json:"nights"`
	TotalEstimate  int64  `json:"totalEstimate"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	Message        string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		CheckInRaw:  strings.TrimSpace(r.CheckIn),
		CheckOutRaw: strings.TrimSpace(r.CheckOut),
		Guests:      r.Guests.Value(),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		OK:             true,
		Available:      resp.Result.Available,
		AvailableDomes: resp.Result.AvailableDomes,
		TotalDomes:     resp.Result.TotalDomes,
		Currency:       resp.Currency,
		NightlyRate:    resp.Result.NightlyRate,
		Nights:         resp.Result.Nights,
		TotalEstimate:  resp.Result.TotalEstimate,
		CheckIn:        resp.Window.CheckInString(),
		CheckOut:       resp.Window.CheckOutString(),
		Message:        resp.Message,
	}
}
