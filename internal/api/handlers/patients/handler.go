package patients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/api/middleware"
	patientService "github.com/m04kA/AMC-BookingService/internal/service/patients"
	"github.com/m04kA/AMC-BookingService/internal/service/patients/models"
)

const (
	msgInvalidUserID      = "identificador de usuario inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgPatientNotFound    = "usuario no encontrado"
	msgEmailTaken         = "el correo ya está registrado"
	msgAccessDenied       = "no tiene acceso a este perfil"
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidInput       = "datos del perfil inválidos"
)

type Handler struct {
	service PatientsService
	logger  Logger
}

func NewHandler(service PatientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleRegister POST /api/v1/usuarios
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterPatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /usuarios - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, patientService.ErrEmailTaken):
			h.logger.Warn("POST /usuarios - Email already registered: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		case errors.Is(err, patientService.ErrInvalidInput):
			h.logger.Warn("POST /usuarios - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /usuarios - Failed to register patient: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /usuarios - Patient registered successfully: patient_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/usuarios/{userId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /usuarios/{userId} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id, requesterID, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, patientService.ErrPatientNotFound):
			h.logger.Warn("GET /usuarios/{userId} - Patient not found: patient_id=%d", id)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, patientService.ErrAccessDenied):
			h.logger.Warn("GET /usuarios/{userId} - Access denied: patient_id=%d, requester_id=%d", id, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /usuarios/{userId} - Failed to get patient: patient_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PATCH /api/v1/usuarios/{userId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /usuarios/{userId} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdatePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /usuarios/{userId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, requesterID, middleware.IsAdmin(r.Context()), &req)
	if err != nil {
		switch {
		case errors.Is(err, patientService.ErrPatientNotFound):
			h.logger.Warn("PATCH /usuarios/{userId} - Patient not found: patient_id=%d", id)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, patientService.ErrAccessDenied):
			h.logger.Warn("PATCH /usuarios/{userId} - Access denied: patient_id=%d, requester_id=%d", id, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, patientService.ErrInvalidInput):
			h.logger.Warn("PATCH /usuarios/{userId} - Invalid input: patient_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /usuarios/{userId} - Failed to update patient: patient_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /usuarios/{userId} - Patient updated successfully: patient_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
