package testimonials

import (
	"context"

	"github.com/m04kA/AMC-BookingService/internal/service/testimonials/models"
)

type TestimonialsService interface {
	Create(ctx context.Context, req *models.CreateTestimonialRequest) (*models.TestimonialResponse, error)
	List(ctx context.Context, isAdmin bool) (*models.TestimonialListResponse, error)
	Approve(ctx context.Context, id int64, approved bool) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
