package patients

import (
	"context"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// PatientRepository интерфейс репозитория пользователей
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	GetByEmail(ctx context.Context, email string) (*domain.Patient, error)
	Update(ctx context.Context, id int64, p *domain.Patient) (*domain.Patient, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
