package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	procRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/procedure"
	scheduleRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/AMC-BookingService/internal/integrations/notify"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	apptRepo      AppointmentRepository
	scheduleRepo  ScheduleRepository
	hourBlockRepo HourBlockRepository
	procRepo      ProcedureRepository
	notifyClient  NotifyClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	hourBlockRepo HourBlockRepository,
	procRepo ProcedureRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:      apptRepo,
		scheduleRepo:  scheduleRepo,
		hourBlockRepo: hourBlockRepo,
		procRepo:      procRepo,
		notifyClient:  notifyClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, procedure=%s, date=%s, time=%s",
		req.UserID, req.ProcedureName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты и времени
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: time %s has already passed today", req.StartTime)
		return nil, err
	}

	// 4. Определяем стоимость: явная, иначе цена процедуры из каталога
	amount, err := uc.resolveAmount(ctx, req)
	if err != nil {
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверяем, что слот есть в расписании на дату и включен
		if err := uc.checkSlotConfigured(txCtx, req); err != nil {
			return err
		}

		// 5.2. Проверяем ручные блокировки часов
		blocks, err := uc.hourBlockRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get hour blocks: %v", err)
			return fmt.Errorf("%w: failed to get hour blocks: %v", ErrInternal, err)
		}
		for _, block := range blocks {
			if block.Time.Equal(req.StartTime) {
				uc.logger.Warn("CreateAppointment: slot %s %s is blocked",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotBlocked
			}
		}

		// 5.3. Получаем активные записи на эту дату с блокировкой (FOR UPDATE)
		existing, err := uc.apptRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{Date: &req.Date})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.4. Слот вмещает одну запись: занят - значит недоступен
		for _, appt := range existing {
			if appt.IsActive() && appt.StartTime.Equal(req.StartTime) {
				uc.logger.Warn("CreateAppointment: slot %s %s already booked by appointment id=%d",
					req.Date.Format(domain.DateFormat), req.StartTime, appt.ID)
				return ErrSlotTaken
			}
		}

		// 5.5. Создаем запись в статусе ожидания подтверждения
		appt := &domain.Appointment{
			UserID:        req.UserID,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Phone:         req.Phone,
			Email:         req.Email,
			Date:          req.Date,
			StartTime:     req.StartTime,
			ProcedureName: req.ProcedureName,
			Type:          req.Type,
			PaymentMethod: req.PaymentMethod,
			Amount:        amount,
			AmountPaid:    0,
			Paid:          false,
			Status:        domain.StatusPending,
			Notes:         req.Notes,
			CreatedBy:     req.CreatedBy,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 6. Отправляем уведомление; его недоступность не отменяет запись
	uc.sendCreatedEvent(ctx, result)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		FirstName:     result.FirstName,
		LastName:      result.LastName,
		Phone:         result.Phone,
		Email:         result.Email,
		Date:          result.Date,
		StartTime:     result.StartTime,
		ProcedureName: result.ProcedureName,
		Type:          string(result.Type),
		PaymentMethod: string(result.PaymentMethod),
		Amount:        result.Amount,
		AmountPaid:    result.AmountPaid,
		Paid:          result.Paid,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedBy:     string(result.CreatedBy),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// resolveAmount определяет стоимость записи
// Явная стоимость имеет приоритет; иначе берется цена процедуры из каталога.
// Процедуры с диапазоном цен дают 0 - стоимость уточняется при завершении
func (uc *UseCase) resolveAmount(ctx context.Context, req *Request) (float64, error) {
	if req.Amount != nil {
		return *req.Amount, nil
	}

	proc, err := uc.procRepo.GetByName(ctx, req.ProcedureName)
	if err != nil {
		if errors.Is(err, procRepo.ErrProcedureNotFound) {
			uc.logger.Info("CreateAppointment: procedure %s not in catalog, amount defaults to 0", req.ProcedureName)
			return 0, nil
		}
		uc.logger.Error("CreateAppointment: failed to get procedure %s: %v", req.ProcedureName, err)
		return 0, fmt.Errorf("%w: failed to get procedure: %v", ErrInternal, err)
	}

	amount, ok := proc.PriceAmount()
	if !ok {
		uc.logger.Info("CreateAppointment: procedure %s has no single price, amount defaults to 0", req.ProcedureName)
		return 0, nil
	}

	return amount, nil
}

// checkSlotConfigured проверяет, что время входит в действующее расписание
// на дату и слот включен
func (uc *UseCase) checkSlotConfigured(ctx context.Context, req *Request) error {
	slots, err := uc.scheduleRepo.GetOverride(ctx, req.Date)
	if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
		slots, err = uc.scheduleRepo.GetGlobal(ctx)
	}
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
		return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	for _, slot := range slots {
		if slot.Time.Equal(req.StartTime) {
			if !slot.Available {
				uc.logger.Warn("CreateAppointment: slot %s %s is disabled",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			return nil
		}
	}

	uc.logger.Warn("CreateAppointment: slot %s is not in the schedule for %s",
		req.StartTime, req.Date.Format(domain.DateFormat))
	return ErrSlotNotFound
}

// sendCreatedEvent отправляет уведомление о созданной записи
func (uc *UseCase) sendCreatedEvent(ctx context.Context, appt *domain.Appointment) {
	if uc.notifyClient == nil {
		return
	}

	err := uc.notifyClient.SendAppointmentEventWithGracefulDegradation(ctx, notify.AppointmentEvent{
		Event:         notify.EventAppointmentCreated,
		AppointmentID: appt.ID,
		PatientName:   appt.FullName(),
		PatientPhone:  appt.Phone,
		PatientEmail:  appt.Email,
		ProcedureName: appt.ProcedureName,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
	})
	if err != nil && !errors.Is(err, notify.ErrServiceDegraded) {
		uc.logger.Error("CreateAppointment: failed to send notification for appointment id=%d: %v", appt.ID, err)
	}
}
