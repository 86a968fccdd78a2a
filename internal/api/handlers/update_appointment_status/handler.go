package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/internal/service/appointments"
	"github.com/m04kA/AMC-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "identificador de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgAppointmentNotFound  = "cita no encontrada"
	msgInvalidTransition    = "el cambio de estado no está permitido"
	msgInvalidStatus        = "estado inválido, se espera pending o confirmed"
)

// UpdateStatusRequest HTTP request model
// Допустимы только переходы pending <-> confirmed; посещение и отмена
// выполняются отдельными операциями
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/citas/{citaId}/estado
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /citas/{citaId}/estado - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /citas/{citaId}/estado - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var result *models.AppointmentResponse

	switch domain.AppointmentStatus(req.Status) {
	case domain.StatusConfirmed:
		result, err = h.service.Confirm(r.Context(), id)
	case domain.StatusPending:
		result, err = h.service.Revert(r.Context(), id)
	default:
		h.logger.Warn("PATCH /citas/{citaId}/estado - Invalid status: %s", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /citas/{citaId}/estado - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /citas/{citaId}/estado - Invalid transition: appointment_id=%d, status=%s", id, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /citas/{citaId}/estado - Failed to update status: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /citas/{citaId}/estado - Status updated successfully: appointment_id=%d, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
