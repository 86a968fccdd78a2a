package schedule

import (
	"context"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetGlobal(ctx context.Context) ([]domain.ScheduleSlot, error)
	GetOverride(ctx context.Context, date time.Time) ([]domain.ScheduleSlot, error)
	ReplaceGlobal(ctx context.Context, slots []domain.ScheduleSlot) error
	ReplaceOverride(ctx context.Context, date time.Time, slots []domain.ScheduleSlot) error
	SetGlobalSlotAvailability(ctx context.Context, slotTime string, available bool) error
	DeleteOverride(ctx context.Context, date time.Time) error
}

// HourBlockRepository интерфейс репозитория блокировок часов
type HourBlockRepository interface {
	Create(ctx context.Context, block *domain.HourBlock) (*domain.HourBlock, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.HourBlock, error)
	Delete(ctx context.Context, date time.Time, blockTime string) error
}

// AppointmentRepository интерфейс репозитория записей
// Используется для проверки занятости слота перед переключением
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
