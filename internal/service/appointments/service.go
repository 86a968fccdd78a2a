package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AMC-BookingService/internal/domain"
	apptRepo "github.com/m04kA/AMC-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/AMC-BookingService/internal/integrations/notify"
	"github.com/m04kA/AMC-BookingService/internal/service/appointments/models"
)

// Service сервис жизненного цикла записей клиники
type Service struct {
	apptRepo     AppointmentRepository
	notifyClient NotifyClient
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:     apptRepo,
		notifyClient: notifyClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID получает запись по ID
// Пациент видит только свою запись, администратор - любую
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if appt.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments получает историю записей пациента
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.apptRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// List получает записи клиники с гибкой фильтрацией
// Доступно только администратору
//
// Примеры использования:
// - Все активные записи: List(ctx, &ListAppointmentsRequest{})
// - Записи на дату: указать Date
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отмененные: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := "List: fetching appointments"
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Confirm подтверждает ожидающую запись
func (s *Service) Confirm(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Confirm: confirming appointment id=%d", id)

	appt, err := s.transition(ctx, id, domain.StatusConfirmed, "Confirm")
	if err != nil {
		return nil, err
	}

	s.sendEvent(ctx, notify.EventAppointmentConfirmed, appt, "")

	s.logger.Info("Confirm: successfully confirmed appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// Revert возвращает подтвержденную запись в статус ожидания
func (s *Service) Revert(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Revert: reverting appointment id=%d to pending", id)

	appt, err := s.transition(ctx, id, domain.StatusPending, "Revert")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Revert: successfully reverted appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет запись
// Доступно только администратору, отмененная запись освобождает слот
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id, "Cancel")
	if err != nil {
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.apptRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	reason := ""
	if req.CancellationReason != nil {
		reason = *req.CancellationReason
	}
	s.sendEvent(ctx, notify.EventAppointmentCancelled, appt, reason)

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// Conclude завершает подтвержденную запись с фиксацией оплаты
// Возвращает расчет оплаты: внесено, остаток, возврат и процент оплаты
func (s *Service) Conclude(ctx context.Context, id int64, req *models.ConcludeAppointmentRequest) (*models.ConcludeAppointmentResponse, error) {
	s.logger.Info("Conclude: concluding appointment id=%d, newPayment=%.2f", id, req.NewPayment)

	if req.PaymentSubtype == "" {
		s.logger.Warn("Conclude: missing payment subtype for appointment id=%d", id)
		return nil, ErrPaymentSubtypeRequired
	}

	subtype, err := models.ToDomainPaymentSubtype(req.PaymentSubtype)
	if err != nil {
		s.logger.Warn("Conclude: invalid payment subtype=%s for appointment id=%d", req.PaymentSubtype, id)
		return nil, fmt.Errorf("%w: invalid payment subtype", ErrInvalidInput)
	}

	var resp *models.ConcludeAppointmentResponse

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		appt, err := s.getAppointment(ctx, id, "Conclude")
		if err != nil {
			return err
		}

		if !appt.CanBeConcluded() {
			s.logger.Warn("Conclude: appointment id=%d cannot be concluded, status=%s", id, appt.Status)
			return ErrCannotConclude
		}

		// Итоговая стоимость может быть скорректирована при завершении
		total := appt.Amount
		if req.Amount != nil {
			total = *req.Amount
		}

		breakdown := domain.ComputePaymentBreakdown(total, appt.AmountPaid, req.NewPayment)
		paid := breakdown.PaidSoFar >= total

		if err := s.apptRepo.Conclude(ctx, id, subtype, total, breakdown.PaidSoFar, paid); err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Conclude: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Conclude - repository error: %v", ErrInternal, err)
		}

		appt.Status = domain.StatusAttended
		appt.PaymentSubtype = &subtype
		appt.Amount = total
		appt.AmountPaid = breakdown.PaidSoFar
		appt.Paid = paid

		resp = &models.ConcludeAppointmentResponse{
			Appointment: *models.FromDomainAppointment(appt),
			Payment:     models.FromDomainPaymentBreakdown(breakdown),
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Conclude: successfully concluded appointment id=%d, paid=%v", id, resp.Appointment.Paid)
	return resp, nil
}

// Update переносит или правит запись
// При смене даты или времени проверяет, что целевой слот свободен
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", id)

	var updated *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		appt, err := s.getAppointment(ctx, id, "Update")
		if err != nil {
			return err
		}

		if !appt.CanBeUpdated() {
			s.logger.Warn("Update: appointment id=%d cannot be updated, status=%s", id, appt.Status)
			return ErrCannotUpdate
		}

		rescheduled := false

		if req.Date != nil {
			date, err := time.Parse(domain.DateFormat, *req.Date)
			if err != nil {
				s.logger.Warn("Update: invalid date=%s for appointment id=%d", *req.Date, id)
				return fmt.Errorf("%w: invalid date format", ErrInvalidInput)
			}
			if !date.Equal(appt.Date) {
				appt.Date = date
				rescheduled = true
			}
		}

		if req.StartTime != nil {
			startTime, err := models.ParseStartTime(*req.StartTime)
			if err != nil {
				s.logger.Warn("Update: invalid start time=%s for appointment id=%d", *req.StartTime, id)
				return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
			}
			if !startTime.Equal(appt.StartTime) {
				appt.StartTime = startTime
				rescheduled = true
			}
		}

		if req.ProcedureName != nil {
			appt.ProcedureName = *req.ProcedureName
		}
		if req.PaymentSubtype != nil {
			subtype, err := models.ToDomainPaymentSubtype(*req.PaymentSubtype)
			if err != nil {
				s.logger.Warn("Update: invalid payment subtype=%s for appointment id=%d", *req.PaymentSubtype, id)
				return fmt.Errorf("%w: invalid payment subtype", ErrInvalidInput)
			}
			appt.PaymentSubtype = &subtype
		}
		if req.Amount != nil {
			appt.Amount = *req.Amount
		}
		if req.Notes != nil {
			appt.Notes = req.Notes
		}

		// Перенос допустим только на свободный слот
		if rescheduled {
			if err := s.checkSlotFree(ctx, appt); err != nil {
				return err
			}
		}

		updated, err = s.apptRepo.Update(ctx, id, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.sendEvent(ctx, notify.EventAppointmentUpdated, updated, "")

	s.logger.Info("Update: successfully updated appointment id=%d", id)
	return models.FromDomainAppointment(updated), nil
}

// Delete удаляет запись безвозвратно
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.apptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, id int64, op string) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// transition выполняет смену статуса по допустимому ребру графа статусов
func (s *Service) transition(ctx context.Context, id int64, next domain.AppointmentStatus, op string) (*domain.Appointment, error) {
	appt, err := s.getAppointment(ctx, id, op)
	if err != nil {
		return nil, err
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("%s: invalid transition %s -> %s for appointment id=%d", op, appt.Status, next, id)
		return nil, ErrInvalidTransition
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	appt.Status = next
	return appt, nil
}

// checkSlotFree проверяет, что на дату и время записи нет другой активной записи
// Сравнение идет по каноническому представлению времени
func (s *Service) checkSlotFree(ctx context.Context, appt *domain.Appointment) error {
	existing, err := s.apptRepo.GetWithFilter(ctx, domain.AppointmentsFilter{Date: &appt.Date})
	if err != nil {
		s.logger.Error("checkSlotFree: repository error for date=%s: %v", appt.Date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: checkSlotFree - repository error: %v", ErrInternal, err)
	}

	for _, other := range existing {
		if other.ID == appt.ID {
			continue
		}
		if other.IsActive() && other.StartTime.Equal(appt.StartTime) {
			s.logger.Warn("checkSlotFree: slot %s %s already booked by appointment id=%d",
				appt.Date.Format(domain.DateFormat), appt.StartTime, other.ID)
			return ErrSlotBusy
		}
	}

	return nil
}

// sendEvent отправляет уведомление о событии записи
// Недоступность сервиса уведомлений не прерывает операцию
func (s *Service) sendEvent(ctx context.Context, event notify.Event, appt *domain.Appointment, reason string) {
	if s.notifyClient == nil {
		return
	}

	err := s.notifyClient.SendAppointmentEventWithGracefulDegradation(ctx, notify.AppointmentEvent{
		Event:         event,
		AppointmentID: appt.ID,
		PatientName:   appt.FullName(),
		PatientPhone:  appt.Phone,
		PatientEmail:  appt.Email,
		ProcedureName: appt.ProcedureName,
		Date:          appt.Date.Format(domain.DateFormat),
		StartTime:     appt.StartTime.String(),
		Reason:        reason,
	})
	if err != nil && !errors.Is(err, notify.ErrServiceDegraded) {
		s.logger.Error("sendEvent: failed to send event=%s for appointment id=%d: %v", event, appt.ID, err)
	}
}
