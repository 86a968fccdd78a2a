package hour_blocks

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
	msgInvalidDate        = "fecha inválida, se espera el formato YYYY-MM-DD"
	msgDateMissing        = "el parámetro date es obligatorio"
	msgDuplicateBlock     = "la hora ya está bloqueada"
	msgBlockNotFound      = "bloqueo no encontrado"
	msgInvalidInput       = "datos del bloqueo inválidos"
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

// HandleCreate POST /api/v1/agenda/bloqueos
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agenda/bloqueos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDuplicateBlock):
			h.logger.Warn("POST /agenda/bloqueos - Duplicate block: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateBlock)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /agenda/bloqueos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /agenda/bloqueos - Failed to create block: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agenda/bloqueos - Block created successfully: block_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/agenda/bloqueos?date=2025-10-15
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /agenda/bloqueos - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateMissing)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /agenda/bloqueos - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListBlocks(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /agenda/bloqueos - Failed to list blocks: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/agenda/bloqueos/{date}/{time}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /agenda/bloqueos/{date}/{time} - Invalid date: %s", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), date, vars["time"]); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockNotFound):
			h.logger.Warn("DELETE /agenda/bloqueos/{date}/{time} - Block not found: date=%s, time=%s", vars["date"], vars["time"])
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /agenda/bloqueos/{date}/{time} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /agenda/bloqueos/{date}/{time} - Failed to delete block: date=%s, time=%s, error=%v",
				vars["date"], vars["time"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /agenda/bloqueos/{date}/{time} - Block deleted successfully: date=%s, time=%s", vars["date"], vars["time"])
	w.WriteHeader(http.StatusNoContent)
}
