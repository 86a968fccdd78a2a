package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/api/middleware"
	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/internal/usecase/resolve_availability"
)

const (
	msgInvalidDate = "fecha inválida, se espera el formato YYYY-MM-DD"
	msgDateMissing = "el parámetro date es obligatorio"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda/disponibilidad?date=2025-10-15
// Имена пациентов в занятых часах видит только администратор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /agenda/disponibilidad - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateMissing)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /agenda/disponibilidad - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &resolve_availability.Request{
		Date:             date,
		IncludeOccupants: middleware.IsAdmin(r.Context()),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolve_availability.ErrInvalidInput):
			h.logger.Warn("GET /agenda/disponibilidad - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /agenda/disponibilidad - Failed to resolve availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
