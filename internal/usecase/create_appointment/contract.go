package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	"github.com/m04kA/AMC-BookingService/internal/integrations/notify"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetGlobal(ctx context.Context) ([]domain.ScheduleSlot, error)
	GetOverride(ctx context.Context, date time.Time) ([]domain.ScheduleSlot, error)
}

// HourBlockRepository интерфейс репозитория блокировок часов
type HourBlockRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.HourBlock, error)
}

// ProcedureRepository интерфейс репозитория процедур
// Используется для подстановки цены процедуры в запись
type ProcedureRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Procedure, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	SendAppointmentEventWithGracefulDegradation(ctx context.Context, event notify.AppointmentEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
