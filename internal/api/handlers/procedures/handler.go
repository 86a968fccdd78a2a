package procedures

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	procService "github.com/m04kA/AMC-BookingService/internal/service/procedures"
	"github.com/m04kA/AMC-BookingService/internal/service/procedures/models"
)

const (
	msgInvalidProcedureID = "identificador de procedimiento inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgProcedureNotFound  = "procedimiento no encontrado"
	msgInvalidInput       = "datos del procedimiento inválidos"
)

type Handler struct {
	service ProceduresService
	logger  Logger
}

func NewHandler(service ProceduresService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/procedimientos
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProcedureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /procedimientos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, procService.ErrInvalidInput):
			h.logger.Warn("POST /procedimientos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /procedimientos - Failed to create procedure: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /procedimientos - Procedure created successfully: procedure_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/procedimientos/{procedureId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["procedureId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /procedimientos/{procedureId} - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, procService.ErrProcedureNotFound):
			h.logger.Warn("GET /procedimientos/{procedureId} - Procedure not found: procedure_id=%d", id)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		default:
			h.logger.Error("GET /procedimientos/{procedureId} - Failed to get procedure: procedure_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/procedimientos
// Query параметры: category, featured
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := &models.ListProceduresRequest{}

	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}
	if featured := r.URL.Query().Get("featured"); featured != "" {
		featuredOnly, err := strconv.ParseBool(featured)
		if err != nil {
			h.logger.Warn("GET /procedimientos - Invalid featured parameter: %s", featured)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		req.FeaturedOnly = featuredOnly
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, procService.ErrInvalidInput):
			h.logger.Warn("GET /procedimientos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /procedimientos - Failed to list procedures: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PATCH /api/v1/procedimientos/{procedureId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["procedureId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /procedimientos/{procedureId} - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	var req models.UpdateProcedureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /procedimientos/{procedureId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, procService.ErrProcedureNotFound):
			h.logger.Warn("PATCH /procedimientos/{procedureId} - Procedure not found: procedure_id=%d", id)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, procService.ErrInvalidInput):
			h.logger.Warn("PATCH /procedimientos/{procedureId} - Invalid input: procedure_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /procedimientos/{procedureId} - Failed to update procedure: procedure_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /procedimientos/{procedureId} - Procedure updated successfully: procedure_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/procedimientos/{procedureId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["procedureId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /procedimientos/{procedureId} - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, procService.ErrProcedureNotFound):
			h.logger.Warn("DELETE /procedimientos/{procedureId} - Procedure not found: procedure_id=%d", id)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		default:
			h.logger.Error("DELETE /procedimientos/{procedureId} - Failed to delete procedure: procedure_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /procedimientos/{procedureId} - Procedure deleted successfully: procedure_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
