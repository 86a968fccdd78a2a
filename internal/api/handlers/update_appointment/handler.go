package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/service/appointments"
	"github.com/m04kA/AMC-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "identificador de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgAppointmentNotFound  = "cita no encontrada"
	msgCannotUpdate         = "la cita ya no se puede modificar"
	msgSlotBusy             = "la nueva hora ya está reservada"
	msgInvalidInput         = "datos de la cita inválidos"
)

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

// Handle PATCH /api/v1/citas/{citaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /citas/{citaId} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /citas/{citaId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /citas/{citaId} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrCannotUpdate):
			h.logger.Warn("PATCH /citas/{citaId} - Cannot update: appointment_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotUpdate)

		case errors.Is(err, appointments.ErrSlotBusy):
			h.logger.Warn("PATCH /citas/{citaId} - Slot busy: appointment_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgSlotBusy)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /citas/{citaId} - Invalid input: appointment_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /citas/{citaId} - Failed to update appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /citas/{citaId} - Appointment updated successfully: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
