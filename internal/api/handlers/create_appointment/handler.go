package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/api/middleware"
	"github.com/m04kA/AMC-BookingService/internal/domain"
	createAppointment "github.com/m04kA/AMC-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDateOrTime  = "fecha u hora inválida, se espera YYYY-MM-DD y HH:MM"
	msgSlotTaken          = "la hora seleccionada ya está reservada"
	msgSlotNotAvailable   = "la hora seleccionada no está disponible"
	msgSlotBlocked        = "la hora seleccionada está bloqueada"
	msgSlotNotFound       = "la hora seleccionada no pertenece al horario de atención"
	msgInvalidDate        = "la fecha seleccionada no es válida"
	msgTooLateToBook      = "la hora seleccionada ya pasó"
	msgInvalidInput       = "datos de la cita inválidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/citas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgInvalidInput)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /citas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Записи, созданные администратором, помечаются как созданные персоналом
	createdBy := domain.CreatedByPatient
	if middleware.IsAdmin(r.Context()) {
		createdBy = domain.CreatedByStaff
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, createdBy)
	if err != nil {
		h.logger.Warn("POST /citas - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /citas - Slot taken: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /citas - Slot not available: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrSlotBlocked):
			h.logger.Warn("POST /citas - Slot blocked: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotBlocked)

		case errors.Is(err, createAppointment.ErrSlotNotFound):
			h.logger.Warn("POST /citas - Slot not in schedule: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /citas - Invalid date: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /citas - Too late to book: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /citas - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /citas - Failed to create appointment: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /citas - Appointment created successfully: appointment_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
