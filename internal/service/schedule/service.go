package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	hourblockRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/hourblock"
	scheduleRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/AMC-BookingService/internal/service/schedule/models"
	"github.com/m04kA/AMC-BookingService/pkg/types"
)

// Service сервис администрирования расписания клиники
type Service struct {
	scheduleRepo  ScheduleRepository
	hourBlockRepo HourBlockRepository
	apptRepo      AppointmentRepository
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	hourBlockRepo HourBlockRepository,
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		hourBlockRepo: hourBlockRepo,
		apptRepo:      apptRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetEffective получает действующее расписание на дату
// Дата с отдельным расписанием использует только его, остальные даты -
// расписание по умолчанию
func (s *Service) GetEffective(ctx context.Context, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("GetEffective: fetching schedule for date=%s", date.Format(domain.DateFormat))

	slots, override, err := s.effectiveSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	if override {
		return models.FromDomainSlots(&date, slots), nil
	}
	return models.FromDomainSlots(nil, slots), nil
}

// GetGlobal получает расписание по умолчанию
func (s *Service) GetGlobal(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetGlobal: fetching default schedule")

	slots, err := s.scheduleRepo.GetGlobal(ctx)
	if err != nil {
		s.logger.Error("GetGlobal: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGlobal - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(nil, slots), nil
}

// Update полностью заменяет расписание
// Date == nil заменяет расписание по умолчанию, иначе создает или
// обновляет отдельное расписание на дату
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	slots, err := models.ToDomainSlots(req.Slots)
	if err != nil {
		s.logger.Warn("Update: invalid slots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Date == nil {
		s.logger.Info("Update: replacing default schedule with %d slots", len(slots))

		if err := s.scheduleRepo.ReplaceGlobal(ctx, slots); err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		return models.FromDomainSlots(nil, slots), nil
	}

	date, err := time.Parse(domain.DateFormat, *req.Date)
	if err != nil {
		s.logger.Warn("Update: invalid date=%s", *req.Date)
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	s.logger.Info("Update: replacing schedule for date=%s with %d slots", *req.Date, len(slots))

	if err := s.scheduleRepo.ReplaceOverride(ctx, date, slots); err != nil {
		s.logger.Error("Update: repository error for date=%s: %v", *req.Date, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(&date, slots), nil
}

// ToggleSlot переключает доступность одного слота
// Слот, занятый активной записью, освободить нельзя - вернется ErrSlotBusy
func (s *Service) ToggleSlot(ctx context.Context, req *models.ToggleSlotRequest) error {
	slotTime, err := types.NewTimeStringFromLabel(req.Time)
	if err != nil {
		s.logger.Warn("ToggleSlot: invalid time=%s", req.Time)
		return fmt.Errorf("%w: invalid slot time", ErrInvalidInput)
	}

	// Переключение в расписании по умолчанию
	if req.Date == nil {
		s.logger.Info("ToggleSlot: setting default slot %s available=%v", slotTime, req.Available)

		err := s.scheduleRepo.SetGlobalSlotAvailability(ctx, slotTime.String(), req.Available)
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			s.logger.Warn("ToggleSlot: default slot %s not found", slotTime)
			return ErrSlotNotFound
		}
		if err != nil {
			s.logger.Error("ToggleSlot: repository error for slot %s: %v", slotTime, err)
			return fmt.Errorf("%w: ToggleSlot - repository error: %v", ErrInternal, err)
		}

		return nil
	}

	date, err := time.Parse(domain.DateFormat, *req.Date)
	if err != nil {
		s.logger.Warn("ToggleSlot: invalid date=%s", *req.Date)
		return fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	s.logger.Info("ToggleSlot: setting slot %s %s available=%v", *req.Date, slotTime, req.Available)

	return s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// Слот с активной записью управляется только через запись
		if err := s.checkSlotNotBusy(ctx, date, slotTime); err != nil {
			return err
		}

		slots, _, err := s.effectiveSlots(ctx, date)
		if err != nil {
			return err
		}

		found := false
		for i := range slots {
			if slots[i].Time.Equal(slotTime) {
				slots[i].Available = req.Available
				found = true
				break
			}
		}
		if !found {
			s.logger.Warn("ToggleSlot: slot %s not found in schedule for date=%s", slotTime, *req.Date)
			return ErrSlotNotFound
		}

		if err := s.scheduleRepo.ReplaceOverride(ctx, date, slots); err != nil {
			s.logger.Error("ToggleSlot: repository error for date=%s: %v", *req.Date, err)
			return fmt.Errorf("%w: ToggleSlot - repository error: %v", ErrInternal, err)
		}

		return nil
	})
}

// DeleteOverride удаляет отдельное расписание на дату
// Дата возвращается к расписанию по умолчанию
func (s *Service) DeleteOverride(ctx context.Context, date time.Time) error {
	s.logger.Info("DeleteOverride: removing schedule override for date=%s", date.Format(domain.DateFormat))

	err := s.scheduleRepo.DeleteOverride(ctx, date)
	if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		s.logger.Warn("DeleteOverride: no override for date=%s", date.Format(domain.DateFormat))
		return ErrOverrideNotFound
	}
	if err != nil {
		s.logger.Error("DeleteOverride: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateBlock блокирует час вручную
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.HourBlockResponse, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("CreateBlock: invalid date=%s", req.Date)
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	blockTime, err := types.NewTimeStringFromLabel(req.Time)
	if err != nil {
		s.logger.Warn("CreateBlock: invalid time=%s", req.Time)
		return nil, fmt.Errorf("%w: invalid block time", ErrInvalidInput)
	}

	s.logger.Info("CreateBlock: blocking %s %s", req.Date, blockTime)

	block, err := s.hourBlockRepo.Create(ctx, &domain.HourBlock{
		Date:   date,
		Time:   blockTime,
		Reason: req.Reason,
	})
	if err != nil {
		if errors.Is(err, hourblockRepo.ErrDuplicateBlock) {
			s.logger.Warn("CreateBlock: block %s %s already exists", req.Date, blockTime)
			return nil, ErrDuplicateBlock
		}
		s.logger.Error("CreateBlock: repository error for %s %s: %v", req.Date, blockTime, err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: successfully blocked %s %s, id=%d", req.Date, blockTime, block.ID)
	return models.FromDomainHourBlock(block), nil
}

// ListBlocks получает блокировки на дату
func (s *Service) ListBlocks(ctx context.Context, date time.Time) (*models.HourBlockListResponse, error) {
	s.logger.Info("ListBlocks: fetching blocks for date=%s", date.Format(domain.DateFormat))

	blocks, err := s.hourBlockRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListBlocks: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHourBlockList(blocks), nil
}

// DeleteBlock снимает блокировку часа
func (s *Service) DeleteBlock(ctx context.Context, date time.Time, blockTime string) error {
	canonical, err := types.NewTimeStringFromLabel(blockTime)
	if err != nil {
		s.logger.Warn("DeleteBlock: invalid time=%s", blockTime)
		return fmt.Errorf("%w: invalid block time", ErrInvalidInput)
	}

	s.logger.Info("DeleteBlock: unblocking %s %s", date.Format(domain.DateFormat), canonical)

	err = s.hourBlockRepo.Delete(ctx, date, canonical.String())
	if errors.Is(err, hourblockRepo.ErrBlockNotFound) {
		s.logger.Warn("DeleteBlock: block %s %s not found", date.Format(domain.DateFormat), canonical)
		return ErrBlockNotFound
	}
	if err != nil {
		s.logger.Error("DeleteBlock: repository error for %s %s: %v", date.Format(domain.DateFormat), canonical, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Вспомогательные методы

// effectiveSlots возвращает действующие слоты на дату и признак того,
// что на дату есть отдельное расписание
func (s *Service) effectiveSlots(ctx context.Context, date time.Time) ([]domain.ScheduleSlot, bool, error) {
	slots, err := s.scheduleRepo.GetOverride(ctx, date)
	if err == nil {
		return slots, true, nil
	}
	if !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		s.logger.Error("effectiveSlots: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, false, fmt.Errorf("%w: effectiveSlots - repository error: %v", ErrInternal, err)
	}

	slots, err = s.scheduleRepo.GetGlobal(ctx)
	if err != nil {
		s.logger.Error("effectiveSlots: repository error for default schedule: %v", err)
		return nil, false, fmt.Errorf("%w: effectiveSlots - repository error: %v", ErrInternal, err)
	}

	return slots, false, nil
}

// checkSlotNotBusy проверяет, что на дату и время нет активной записи
func (s *Service) checkSlotNotBusy(ctx context.Context, date time.Time, slotTime types.TimeString) error {
	appointments, err := s.apptRepo.GetWithFilter(ctx, domain.AppointmentsFilter{Date: &date})
	if err != nil {
		s.logger.Error("checkSlotNotBusy: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: checkSlotNotBusy - repository error: %v", ErrInternal, err)
	}

	for _, appt := range appointments {
		if appt.IsActive() && appt.StartTime.Equal(slotTime) {
			s.logger.Warn("checkSlotNotBusy: slot %s %s occupied by appointment id=%d",
				date.Format(domain.DateFormat), slotTime, appt.ID)
			return ErrSlotBusy
		}
	}

	return nil
}
