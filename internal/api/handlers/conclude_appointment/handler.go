package conclude_appointment

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
	msgCannotConclude       = "solo una cita confirmada puede marcarse como atendida"
	msgSubtypeRequired      = "se requiere la forma de pago para concluir la cita"
	msgInvalidInput         = "datos de pago inválidos"
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

// Handle POST /api/v1/citas/{citaId}/concluir
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["citaId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /citas/{citaId}/concluir - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.ConcludeAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /citas/{citaId}/concluir - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Conclude(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /citas/{citaId}/concluir - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrCannotConclude):
			h.logger.Warn("POST /citas/{citaId}/concluir - Cannot conclude: appointment_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotConclude)

		case errors.Is(err, appointments.ErrPaymentSubtypeRequired):
			h.logger.Warn("POST /citas/{citaId}/concluir - Payment subtype missing: appointment_id=%d", id)
			handlers.RespondBadRequest(w, msgSubtypeRequired)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /citas/{citaId}/concluir - Invalid input: appointment_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /citas/{citaId}/concluir - Failed to conclude appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /citas/{citaId}/concluir - Appointment concluded successfully: appointment_id=%d, paid=%t",
		id, result.Appointment.Paid)
	handlers.RespondJSON(w, http.StatusOK, result)
}
