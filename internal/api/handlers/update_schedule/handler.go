package update_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/internal/service/schedule"
	"github.com/m04kA/AMC-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidSlots       = "lista de horarios inválida"
	msgInvalidDate        = "fecha inválida, se espera el formato YYYY-MM-DD"
	msgSlotNotFound       = "el horario indicado no existe en la agenda"
	msgSlotBusy           = "el horario está ocupado por una cita activa"
	msgOverrideNotFound   = "la fecha no tiene una agenda especial"
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

// Handle PUT /api/v1/agenda/slots
// Заменяет расписание целиком: по умолчанию или на дату из тела запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /agenda/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /agenda/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		default:
			h.logger.Error("PUT /agenda/slots - Failed to update schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /agenda/slots - Schedule updated successfully: slots=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleToggle PATCH /api/v1/agenda/slots
// Переключает доступность одного слота
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /agenda/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ToggleSlot(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("PATCH /agenda/slots - Slot not found: time=%s", req.Time)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrSlotBusy):
			h.logger.Warn("PATCH /agenda/slots - Slot busy: time=%s", req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotBusy)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /agenda/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /agenda/slots - Failed to toggle slot: time=%s, error=%v", req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /agenda/slots - Slot toggled successfully: time=%s, available=%v", req.Time, req.Available)
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteOverride DELETE /api/v1/agenda/slots/{date}
// Возвращает дату к расписанию по умолчанию
func (h *Handler) HandleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("DELETE /agenda/slots/{date} - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteOverride(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrOverrideNotFound):
			h.logger.Warn("DELETE /agenda/slots/{date} - Override not found: date=%s", dateStr)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		default:
			h.logger.Error("DELETE /agenda/slots/{date} - Failed to delete override: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /agenda/slots/{date} - Override deleted successfully: date=%s", dateStr)
	w.WriteHeader(http.StatusNoContent)
}
