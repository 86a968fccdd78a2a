package testimonials

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AMC-BookingService/internal/api/handlers"
	"github.com/m04kA/AMC-BookingService/internal/api/middleware"
	testimonialService "github.com/m04kA/AMC-BookingService/internal/service/testimonials"
	"github.com/m04kA/AMC-BookingService/internal/service/testimonials/models"
)

const (
	msgInvalidTestimonialID = "identificador de testimonio inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgTestimonialNotFound  = "testimonio no encontrado"
	msgInvalidInput         = "datos del testimonio inválidos"
)

// ApproveRequest HTTP модель модерации отзыва
type ApproveRequest struct {
	Approved bool `json:"approved"`
}

type Handler struct {
	service TestimonialsService
	logger  Logger
}

func NewHandler(service TestimonialsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/testimonios
// Публичный метод, отзыв попадает на модерацию
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTestimonialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /testimonios - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, testimonialService.ErrInvalidInput):
			h.logger.Warn("POST /testimonios - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /testimonios - Failed to create testimonial: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /testimonios - Testimonial created successfully: testimonial_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/testimonios
// Публичная выдача содержит только одобренные отзывы
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), middleware.IsAdmin(r.Context()))
	if err != nil {
		h.logger.Error("GET /testimonios - Failed to list testimonials: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleApprove PATCH /api/v1/testimonios/{testimonialId}
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["testimonialId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /testimonios/{testimonialId} - Invalid testimonial ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTestimonialID)
		return
	}

	var req ApproveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /testimonios/{testimonialId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Approve(r.Context(), id, req.Approved); err != nil {
		switch {
		case errors.Is(err, testimonialService.ErrTestimonialNotFound):
			h.logger.Warn("PATCH /testimonios/{testimonialId} - Testimonial not found: testimonial_id=%d", id)
			handlers.RespondNotFound(w, msgTestimonialNotFound)

		default:
			h.logger.Error("PATCH /testimonios/{testimonialId} - Failed to moderate testimonial: testimonial_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /testimonios/{testimonialId} - Testimonial moderated successfully: testimonial_id=%d, approved=%v", id, req.Approved)
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete DELETE /api/v1/testimonios/{testimonialId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["testimonialId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /testimonios/{testimonialId} - Invalid testimonial ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTestimonialID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, testimonialService.ErrTestimonialNotFound):
			h.logger.Warn("DELETE /testimonios/{testimonialId} - Testimonial not found: testimonial_id=%d", id)
			handlers.RespondNotFound(w, msgTestimonialNotFound)

		default:
			h.logger.Error("DELETE /testimonios/{testimonialId} - Failed to delete testimonial: testimonial_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /testimonios/{testimonialId} - Testimonial deleted successfully: testimonial_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
