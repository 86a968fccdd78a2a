package get_schedule

import (
	"net/http"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidDate = "fecha inválida, se espera el formato YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda/slots?date=2025-10-15
// Без параметра date возвращается расписание по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	var (
		result *models.ScheduleResponse
		err    error
	)

	if dateStr == "" {
		result, err = h.service.GetGlobal(r.Context())
	} else {
		var date time.Time
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /agenda/slots - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.GetEffective(r.Context(), date)
	}

	if err != nil {
		h.logger.Error("GET /agenda/slots - Failed to get schedule: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
