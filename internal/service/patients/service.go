package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	patientRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/patient"
	"github.com/m04kA/AMC-BookingService/internal/service/patients/models"
)

// Service сервис профилей пользователей клиники
type Service struct {
	patientRepo PatientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(patientRepo PatientRepository, logger Logger) *Service {
	return &Service{
		patientRepo: patientRepo,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя
func (s *Service) Register(ctx context.Context, req *models.RegisterPatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("Register: registering patient email=%s", req.Email)

	if err := s.validateRegistration(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	p, err := s.patientRepo.Create(ctx, req.ToDomainPatient())
	if err != nil {
		if errors.Is(err, patientRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered patient id=%d", p.ID)
	return models.FromDomainPatient(p), nil
}

// GetByID получает профиль пользователя
// Пациент видит только свой профиль, администратор - любой
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64, isAdmin bool) (*models.PatientResponse, error) {
	s.logger.Info("GetByID: fetching patient id=%d for requester=%d", id, requesterID)

	if id != requesterID && !isAdmin {
		s.logger.Warn("GetByID: access denied for requester=%d to patient id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("GetByID: patient id=%d not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("GetByID: repository error for patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPatient(p), nil
}

// Update обновляет профиль пользователя
// Пациент правит только свой профиль, администратор - любой
// Обновляются только переданные поля, email и роль не меняются
func (s *Service) Update(ctx context.Context, id int64, requesterID int64, isAdmin bool, req *models.UpdatePatientRequest) (*models.PatientResponse, error) {
	s.logger.Info("Update: updating patient id=%d by requester=%d", id, requesterID)

	if id != requesterID && !isAdmin {
		s.logger.Warn("Update: access denied for requester=%d to patient id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Update: patient id=%d not found", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("Update: repository error for patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyToPatient(p)

	if p.FirstName == "" || p.LastName == "" {
		s.logger.Warn("Update: empty name for patient id=%d", id)
		return nil, fmt.Errorf("%w: first name and last name are required", ErrInvalidInput)
	}

	updated, err := s.patientRepo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, patientRepo.ErrPatientNotFound) {
			s.logger.Warn("Update: patient id=%d not found during update", id)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("Update: repository error for patient id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated patient id=%d", id)
	return models.FromDomainPatient(updated), nil
}

// validateRegistration валидирует обязательные поля регистрации
func (s *Service) validateRegistration(req *models.RegisterPatientRequest) error {
	if req.FirstName == "" || req.LastName == "" {
		return fmt.Errorf("%w: first name and last name are required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
