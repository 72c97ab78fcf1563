package create_prebooking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DomesBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

const msgPrebookFailed = "No se pudo registrar la pre-reserva."

type Handler struct {
	useCase CreateLeadUseCase
	logger  Logger
}

func NewHandler(useCase CreateLeadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/prebook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PrebookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /prebook - Invalid request body: %v", err)
		handlers.RespondInvalidJSON(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /prebook - Validation failed: %v", err)
			handlers.RespondError(w, validationErr.Status, validationErr.Message)

		default:
			h.logger.Error("POST /prebook - Failed to create lead: checkIn=%q, checkOut=%q, error=%v",
				req.CheckInRaw, req.CheckOutRaw, err)
			handlers.RespondInternalError(w, msgPrebookFailed, err)
		}
		return
	}

	h.logger.Info("POST /prebook - Lead created successfully: lead_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
