package cancel_appointment

import (
	"errors"
	"io"
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
	msgCannotCancel         = "la cita ya no se puede cancelar"
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

// Handle PATCH /api/v1/citas/{citaId}/cancelar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /citas/{citaId}/cancelar - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Тело опционально, причина отмены может отсутствовать
	var req models.CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /citas/{citaId}/cancelar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /citas/{citaId}/cancelar - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /citas/{citaId}/cancelar - Cannot cancel: appointment_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /citas/{citaId}/cancelar - Failed to cancel appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /citas/{citaId}/cancelar - Appointment cancelled successfully: appointment_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
