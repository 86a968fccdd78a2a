package get_revenue

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/internal/usecase/monthly_revenue"
)

const (
	msgInvalidPeriod = "parámetros year y month inválidos"
	msgInvalidMethod = "método de pago inválido, se espera Consultorio u Online"
)

type Handler struct {
	useCase MonthlyRevenueUseCase
	logger  Logger
}

func NewHandler(useCase MonthlyRevenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/ingresos/totales?year=2025&month=10[&method=Consultorio|Online]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /ingresos/totales - Invalid year: %s", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /ingresos/totales - Invalid month: %s", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	req := &monthly_revenue.Request{
		Year:  year,
		Month: time.Month(month),
	}

	if rawMethod := r.URL.Query().Get("method"); rawMethod != "" {
		method := domain.PaymentMethod(rawMethod)
		if method != domain.PaymentOnSite && method != domain.PaymentOnline {
			h.logger.Warn("GET /ingresos/totales - Invalid payment method: %s", rawMethod)
			handlers.RespondBadRequest(w, msgInvalidMethod)
			return
		}
		req.Method = &method
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, monthly_revenue.ErrInvalidInput):
			h.logger.Warn("GET /ingresos/totales - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /ingresos/totales - Failed to compute revenue: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
