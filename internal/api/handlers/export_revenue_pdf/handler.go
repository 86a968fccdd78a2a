package export_revenue_pdf

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/usecase/monthly_revenue"
)

const (
	msgInvalidPeriod = "parámetros year y month inválidos"
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

// Handle GET /api/v1/ingresos/reporte?year=2025&month=10
// Отдает PDF отчет по выручке за месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /ingresos/reporte - Invalid year: %s", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /ingresos/reporte - Invalid month: %s", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	req := &monthly_revenue.Request{
		Year:  year,
		Month: time.Month(month),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, monthly_revenue.ErrInvalidInput):
			h.logger.Warn("GET /ingresos/reporte - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /ingresos/reporte - Failed to compute revenue: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// PDF собирается в буфер, чтобы ошибка рендера не попала в уже начатый ответ
	var buf bytes.Buffer
	if err := writeReport(&buf, result); err != nil {
		h.logger.Error("GET /ingresos/reporte - Failed to render PDF: year=%d, month=%d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("ingresos-%04d-%02d.pdf", year, month)
	size := buf.Len()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(size))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("GET /ingresos/reporte - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /ingresos/reporte - Report generated: year=%d, month=%d, size=%d", year, month, size)
}
