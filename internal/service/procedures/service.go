package procedures

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	procRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/procedure"
	"github.com/m04kA/AMC-BookingService/internal/service/procedures/models"
)

// Service сервис каталога процедур
type Service struct {
	procRepo ProcedureRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса процедур
func NewService(procRepo ProcedureRepository, logger Logger) *Service {
	return &Service{
		procRepo: procRepo,
		logger:   logger,
	}
}

// Create создает процедуру в каталоге
// Доступно только администратору
func (s *Service) Create(ctx context.Context, req *models.CreateProcedureRequest) (*models.ProcedureResponse, error) {
	s.logger.Info("Create: creating procedure name=%s, category=%s", req.Name, req.Category)

	if err := s.validate(req.Name, req.Category); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	proc, err := s.procRepo.Create(ctx, req.ToDomainProcedure())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created procedure id=%d", proc.ID)
	return models.FromDomainProcedure(proc), nil
}

// GetByID получает процедуру по ID
// Публичный метод
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProcedureResponse, error) {
	s.logger.Info("GetByID: fetching procedure id=%d", id)

	proc, err := s.procRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, procRepo.ErrProcedureNotFound) {
			s.logger.Warn("GetByID: procedure id=%d not found", id)
			return nil, ErrProcedureNotFound
		}
		s.logger.Error("GetByID: repository error for procedure id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProcedure(proc), nil
}

// List получает каталог процедур
// Публичный метод, опционально фильтрует по категории и признаку featured
func (s *Service) List(ctx context.Context, req *models.ListProceduresRequest) (*models.ProcedureListResponse, error) {
	s.logger.Info("List: fetching procedures, category=%v, featuredOnly=%v", req.Category, req.FeaturedOnly)

	var category *domain.ProcedureCategory
	if req.Category != nil {
		c := domain.ProcedureCategory(*req.Category)
		if !domain.ValidCategory(c) {
			s.logger.Warn("List: invalid category=%s", *req.Category)
			return nil, fmt.Errorf("%w: invalid category", ErrInvalidInput)
		}
		category = &c
	}

	procedures, err := s.procRepo.List(ctx, category, req.FeaturedOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d procedures", len(procedures))
	return models.FromDomainProcedureList(procedures), nil
}

// Update обновляет процедуру
// Доступно только администратору, обновляются только переданные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateProcedureRequest) (*models.ProcedureResponse, error) {
	s.logger.Info("Update: updating procedure id=%d", id)

	proc, err := s.procRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, procRepo.ErrProcedureNotFound) {
			s.logger.Warn("Update: procedure id=%d not found", id)
			return nil, ErrProcedureNotFound
		}
		s.logger.Error("Update: repository error for procedure id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyToProcedure(proc)

	if err := s.validate(proc.Name, string(proc.Category)); err != nil {
		s.logger.Warn("Update: validation failed for procedure id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.procRepo.Update(ctx, id, proc)
	if err != nil {
		if errors.Is(err, procRepo.ErrProcedureNotFound) {
			s.logger.Warn("Update: procedure id=%d not found during update", id)
			return nil, ErrProcedureNotFound
		}
		s.logger.Error("Update: repository error for procedure id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated procedure id=%d", id)
	return models.FromDomainProcedure(updated), nil
}

// Delete удаляет процедуру из каталога
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting procedure id=%d", id)

	if err := s.procRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, procRepo.ErrProcedureNotFound) {
			s.logger.Warn("Delete: procedure id=%d not found", id)
			return ErrProcedureNotFound
		}
		s.logger.Error("Delete: repository error for procedure id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted procedure id=%d", id)
	return nil
}

// validate валидирует обязательные поля процедуры
func (s *Service) validate(name, category string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.ValidCategory(domain.ProcedureCategory(category)) {
		return fmt.Errorf("%w: invalid category", ErrInvalidInput)
	}
	return nil
}
