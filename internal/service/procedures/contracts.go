package procedures

import (
	"context"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// ProcedureRepository интерфейс репозитория процедур
type ProcedureRepository interface {
	Create(ctx context.Context, proc *domain.Procedure) (*domain.Procedure, error)
	GetByID(ctx context.Context, id int64) (*domain.Procedure, error)
	List(ctx context.Context, category *domain.ProcedureCategory, featuredOnly bool) ([]*domain.Procedure, error)
	Update(ctx context.Context, id int64, proc *domain.Procedure) (*domain.Procedure, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
