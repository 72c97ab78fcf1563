package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DomesBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

const msgAvailabilityFailed = "No se pudo consultar la disponibilidad."

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondInvalidJSON(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /availability - Validation failed: checkIn=%q, checkOut=%q: %v",
				req.CheckIn, req.CheckOut, err)
			handlers.RespondError(w, validationErr.Status, validationErr.Message)

		default:
			h.logger.Error("POST /availability - Failed to check availability: checkIn=%q, checkOut=%q, error=%v",
				req.CheckIn, req.CheckOut, err)
			handlers.RespondInternalError(w, msgAvailabilityFailed, err)
		}
		return
	}

	h.logger.Info("POST /availability - Checked: %s..%s available_domes=%d/%d",
		result.Window.CheckInString(), result.Window.CheckOutString(),
		result.Result.AvailableDomes, result.Result.TotalDomes)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
