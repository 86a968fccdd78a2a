package models

import (
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// Request модели

// CreateTestimonialRequest запрос на публикацию отзыва
// Отзыв появляется на сайте после одобрения администратором
type CreateTestimonialRequest struct {
	AuthorName    string  `json:"authorName"`
	ProcedureName *string `json:"procedureName,omitempty"`
	Rating        int     `json:"rating"` // 1..5
	Text          string  `json:"text"`
}

// ToDomainTestimonial конвертирует запрос в domain модель
func (r *CreateTestimonialRequest) ToDomainTestimonial() *domain.Testimonial {
	return &domain.Testimonial{
		AuthorName:    r.AuthorName,
		ProcedureName: r.ProcedureName,
		Rating:        r.Rating,
		Text:          r.Text,
		Approved:      false,
	}
}

// Response модели

// TestimonialResponse ответ с данными отзыва
type TestimonialResponse struct {
	ID            int64     `json:"id"`
	AuthorName    string    `json:"authorName"`
	ProcedureName *string   `json:"procedureName,omitempty"`
	Rating        int       `json:"rating"`
	Text          string    `json:"text"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TestimonialListResponse ответ со списком отзывов
type TestimonialListResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
}

// Методы конвертации

// FromDomainTestimonial конвертирует domain модель в DTO
func FromDomainTestimonial(t *domain.Testimonial) *TestimonialResponse {
	if t == nil {
		return nil
	}

	return &TestimonialResponse{
		ID:            t.ID,
		AuthorName:    t.AuthorName,
		ProcedureName: t.ProcedureName,
		Rating:        t.Rating,
		Text:          t.Text,
		Approved:      t.Approved,
		CreatedAt:     t.CreatedAt,
	}
}

// FromDomainTestimonialList конвертирует список domain моделей в DTO
func FromDomainTestimonialList(testimonials []*domain.Testimonial) *TestimonialListResponse {
	resp := &TestimonialListResponse{
		Testimonials: make([]TestimonialResponse, len(testimonials)),
	}

	for i, t := range testimonials {
		if tResp := FromDomainTestimonial(t); tResp != nil {
			resp.Testimonials[i] = *tResp
		}
	}

	return resp
}
