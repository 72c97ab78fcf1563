package create_prebooking

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-DomesBooking/internal/api/handlers"
	createLead "github.com/m04kA/SMC-DomesBooking/internal/usecase/create_lead"
)

// PrebookRequest HTTP request model
type PrebookRequest struct {
	FullName             string               `json:"fullName"`
	CheckInRaw           string               `json:"checkInRaw"`  // "2026-02-12"
	CheckOutRaw          string               `json:"checkOutRaw"` // "2026-02-14"
	Guests               *handlers.GuestCount `json:"guests,omitempty"`
	Notes                string               `json:"notes,omitempty"`
	AvailabilitySnapshot json.RawMessage      `json:"availabilitySnapshot,omitempty"`
}

// PrebookResponse HTTP response model
type PrebookResponse struct {
	OK        bool   `json:"ok"`
	LeadID    string `json:"leadId"`
	CreatedAt string `json:"createdAt"`
	Message   string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PrebookRequest) ToUseCaseRequest() *createLead.Request {
	return &createLead.Request{
		FullName:             r.FullName,
		CheckInRaw:           r.CheckInRaw,
		CheckOutRaw:          r.CheckOutRaw,
		Guests:               r.Guests.Value(),
		Notes:                r.Notes,
		AvailabilitySnapshot: r.AvailabilitySnapshot,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createLead.Response) *PrebookResponse {
	return &PrebookResponse{
		OK:        true,
		LeadID:    resp.ID.String(),
		CreatedAt: resp.CreatedAt.UTC().Format(time.RFC3339Nano),
		Message:   createLead.MsgCreated,
	}
}
