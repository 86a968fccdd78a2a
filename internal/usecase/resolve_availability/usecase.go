package resolve_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/schedule"
)

// UseCase use case для вычисления доступности часов на дату
type UseCase struct {
	apptRepo      AppointmentRepository
	scheduleRepo  ScheduleRepository
	hourBlockRepo HourBlockRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	hourBlockRepo HourBlockRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:      apptRepo,
		scheduleRepo:  scheduleRepo,
		hourBlockRepo: hourBlockRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case вычисления доступности
// Дата с отдельным расписанием использует только его, остальные даты -
// расписание по умолчанию. Поверх расписания накладываются активные записи
// и ручные блокировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveAvailability: date=%s, includeOccupants=%v",
		req.Date.Format(domain.DateFormat), req.IncludeOccupants)

	if req.Date.IsZero() {
		uc.logger.Warn("ResolveAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Действующее расписание на дату
	isOverride := true
	slots, err := uc.scheduleRepo.GetOverride(ctx, req.Date)
	if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		isOverride = false
		slots, err = uc.scheduleRepo.GetGlobal(ctx)
	}
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 2. Активные записи на дату
	appointments, err := uc.apptRepo.GetWithFilter(ctx, domain.AppointmentsFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Ручные блокировки часов
	blocks, err := uc.hourBlockRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get hour blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get hour blocks: %v", ErrInternal, err)
	}

	resolved := resolveSlots(slots, appointments, blocks, req.Date, now, req.IncludeOccupants)

	uc.logger.Info("ResolveAvailability: resolved %d slots for date=%s, override=%v",
		len(resolved), req.Date.Format(domain.DateFormat), isOverride)

	return &Response{
		Date:       req.Date,
		IsOverride: isOverride,
		Slots:      resolved,
	}, nil
}
