package testimonials

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	testimonialRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/testimonial"
	"github.com/m04kA/AMC-BookingService/internal/service/testimonials/models"
)

// Service сервис отзывов пациентов
type Service struct {
	testimonialRepo TestimonialRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(testimonialRepo TestimonialRepository, logger Logger) *Service {
	return &Service{
		testimonialRepo: testimonialRepo,
		logger:          logger,
	}
}

// Create публикует отзыв
// Отзыв создается неодобренным и не виден на сайте до модерации
func (s *Service) Create(ctx context.Context, req *models.CreateTestimonialRequest) (*models.TestimonialResponse, error) {
	s.logger.Info("Create: creating testimonial by author=%s, rating=%d", req.AuthorName, req.Rating)

	if req.AuthorName == "" || req.Text == "" {
		s.logger.Warn("Create: missing author or text")
		return nil, fmt.Errorf("%w: author name and text are required", ErrInvalidInput)
	}
	if req.Rating < domain.MinTestimonialRating || req.Rating > domain.MaxTestimonialRating {
		s.logger.Warn("Create: invalid rating=%d", req.Rating)
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinTestimonialRating, domain.MaxTestimonialRating)
	}

	t, err := s.testimonialRepo.Create(ctx, req.ToDomainTestimonial())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created testimonial id=%d", t.ID)
	return models.FromDomainTestimonial(t), nil
}

// List получает отзывы
// Публичная выдача содержит только одобренные отзывы, администратор видит все
func (s *Service) List(ctx context.Context, isAdmin bool) (*models.TestimonialListResponse, error) {
	s.logger.Info("List: fetching testimonials, isAdmin=%v", isAdmin)

	testimonials, err := s.testimonialRepo.List(ctx, !isAdmin)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d testimonials", len(testimonials))
	return models.FromDomainTestimonialList(testimonials), nil
}

// Approve одобряет или скрывает отзыв
// Доступно только администратору
func (s *Service) Approve(ctx context.Context, id int64, approved bool) error {
	s.logger.Info("Approve: setting testimonial id=%d approved=%v", id, approved)

	err := s.testimonialRepo.SetApproved(ctx, id, approved)
	if errors.Is(err, testimonialRepo.ErrTestimonialNotFound) {
		s.logger.Warn("Approve: testimonial id=%d not found", id)
		return ErrTestimonialNotFound
	}
	if err != nil {
		s.logger.Error("Approve: repository error for testimonial id=%d: %v", id, err)
		return fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete удаляет отзыв
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting testimonial id=%d", id)

	err := s.testimonialRepo.Delete(ctx, id)
	if errors.Is(err, testimonialRepo.ErrTestimonialNotFound) {
		s.logger.Warn("Delete: testimonial id=%d not found", id)
		return ErrTestimonialNotFound
	}
	if err != nil {
		s.logger.Error("Delete: repository error for testimonial id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
